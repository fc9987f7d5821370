package entity

import (
	"time"

	"github.com/google/uuid"

	"sharenotes-be/internal/pkg/apperror"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

// Request is a friend request between two users. It is created pending and
// moves to accepted or declined exactly once; both are terminal.
type Request struct {
	Id         uuid.UUID
	SenderId   uuid.UUID
	ReceiverId uuid.UUID
	Status     RequestStatus
	SentAt     time.Time
}

// Active reports whether the request blocks a new request between the pair.
// Declined requests do not block resending.
func (r *Request) Active() bool {
	return r.Status == RequestStatusPending || r.Status == RequestStatusAccepted
}

func (r *Request) Accept() error {
	if r.Status != RequestStatusPending {
		return apperror.InvalidArgument("cannot accept a non-pending request")
	}
	r.Status = RequestStatusAccepted
	return nil
}

func (r *Request) Decline() error {
	if r.Status != RequestStatusPending {
		return apperror.InvalidArgument("cannot decline a non-pending request")
	}
	r.Status = RequestStatusDeclined
	return nil
}
