package model

import (
	"time"

	"github.com/google/uuid"
)

// Request rows additionally carry a partial unique index on
// (sender_id, receiver_id) WHERE status = 'pending', created by cmd/migrate.
// Application-level duplicate checks read before they write, so the index is
// what actually closes the race between two concurrent sends.
type Request struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderId   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverId uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'"`
	SentAt     time.Time `gorm:"not null"`
}

func (Request) TableName() string {
	return "requests"
}
