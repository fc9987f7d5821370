package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendRequestRequest struct {
	SenderId      uuid.UUID
	ReceiverEmail string `json:"receiver_email" validate:"required,email"`
}

type RequestDTO struct {
	Id         uuid.UUID `json:"id"`
	SenderId   uuid.UUID `json:"sender_id"`
	ReceiverId uuid.UUID `json:"receiver_id"`
	Status     string    `json:"status"`
	SentAt     time.Time `json:"sent_at"`
}

// RequestWithUserDTO pairs a request with the counterpart user so inboxes
// can be rendered without extra lookups.
type RequestWithUserDTO struct {
	RequestDTO
	User UserDTO `json:"user"`
}
