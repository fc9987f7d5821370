package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	UserId uuid.UUID
	Title  string `json:"title" validate:"required"`
	Text   string `json:"text"`
	Date   string `json:"date" validate:"required"`
	Grade  int    `json:"grade"`
}

type CreateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

// UpdateNoteRequest carries a partial edit. Nil fields leave the stored
// value untouched; Grade distinguishes "absent" from a legitimate zero.
type UpdateNoteRequest struct {
	Id    uuid.UUID
	Title *string `json:"title"`
	Text  *string `json:"text"`
	Date  *string `json:"date"`
	Grade *int    `json:"grade"`
}

type NoteDTO struct {
	Id        uuid.UUID  `json:"id"`
	UserId    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Text      string     `json:"text"`
	Date      string     `json:"date"`
	Grade     int        `json:"grade"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type FilterNotesRequest struct {
	UserId uuid.UUID
	Title  string `json:"title"`
}

type DownloadNoteRequest struct {
	NoteId uuid.UUID
	Format string
}

type DownloadNoteResponse struct {
	ContentType string
	Filename    string
	Length      int
	Payload     []byte
}
