package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SharedBy struct {
	SenderID uuid.UUID
}

func (s SharedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id = ?", s.SenderID)
}

type SharedWith struct {
	ReceiverID uuid.UUID
}

func (s SharedWith) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("receiver_id = ?", s.ReceiverID)
}

// SharedByEither matches shares where the user is sender or receiver,
// used when cascading a user delete.
type SharedByEither struct {
	UserID uuid.UUID
}

func (s SharedByEither) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id = ? OR receiver_id = ?", s.UserID, s.UserID)
}
