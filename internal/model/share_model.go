package model

import (
	"time"

	"github.com/google/uuid"
)

type Share struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderId   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverId uuid.UUID `gorm:"type:uuid;not null;index"`
	NoteId     uuid.UUID `gorm:"type:uuid;not null;index"`
	SentAt     time.Time `gorm:"not null"`
}

func (Share) TableName() string {
	return "shares"
}
