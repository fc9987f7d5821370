package entity

import (
	"time"

	"github.com/google/uuid"
)

// Share is a one-way, immutable record of a note being sent to another user.
// It references the note, it does not transfer ownership.
type Share struct {
	Id         uuid.UUID
	SenderId   uuid.UUID
	ReceiverId uuid.UUID
	NoteId     uuid.UUID
	SentAt     time.Time
}
