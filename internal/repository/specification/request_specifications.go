package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sharenotes-be/internal/entity"
)

type BySender struct {
	SenderID uuid.UUID
}

func (s BySender) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id = ?", s.SenderID)
}

type ByReceiver struct {
	ReceiverID uuid.UUID
}

func (s ByReceiver) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("receiver_id = ?", s.ReceiverID)
}

type ByStatus struct {
	Status entity.RequestStatus
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

// BetweenUsers matches requests in either direction between two users.
type BetweenUsers struct {
	A uuid.UUID
	B uuid.UUID
}

func (s BetweenUsers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		s.A, s.B, s.B, s.A,
	)
}
