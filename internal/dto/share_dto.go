package dto

import (
	"time"

	"github.com/google/uuid"
)

type ShareNoteRequest struct {
	SenderId      uuid.UUID
	ReceiverEmail string    `json:"receiver_email" validate:"required,email"`
	NoteId        uuid.UUID `json:"note_id" validate:"required"`
}

type ListSharesRequest struct {
	UserId uuid.UUID
	// Optional counterpart filter; blank means no filter.
	Email string `json:"email"`
}

type ShareDTO struct {
	Id         uuid.UUID `json:"id"`
	SenderId   uuid.UUID `json:"sender_id"`
	ReceiverId uuid.UUID `json:"receiver_id"`
	NoteId     uuid.UUID `json:"note_id"`
	SentAt     time.Time `json:"sent_at"`
}

// ShareWithNoteDTO pairs a ledger entry with the shared note so received
// lists can be rendered without extra lookups.
type ShareWithNoteDTO struct {
	ShareDTO
	Note NoteDTO `json:"note"`
}
