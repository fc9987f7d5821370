package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the contract for everything published on the domain event bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "NOTE_SHARED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Domain event constructors. Events are auxiliary: publish failures are
// logged by the caller and never fail the originating operation.

func NewFriendRequestSent(requestId, senderId, receiverId uuid.UUID, at time.Time) BaseEvent {
	return BaseEvent{
		Type: "FRIEND_REQUEST_SENT",
		Data: map[string]interface{}{
			"request_id":  requestId,
			"sender_id":   senderId,
			"receiver_id": receiverId,
		},
		OccurredAt: at,
	}
}

func NewFriendRequestAccepted(requestId, senderId, receiverId uuid.UUID, at time.Time) BaseEvent {
	return BaseEvent{
		Type: "FRIEND_REQUEST_ACCEPTED",
		Data: map[string]interface{}{
			"request_id":  requestId,
			"sender_id":   senderId,
			"receiver_id": receiverId,
		},
		OccurredAt: at,
	}
}

func NewNoteShared(shareId, senderId, receiverId, noteId uuid.UUID, at time.Time) BaseEvent {
	return BaseEvent{
		Type: "NOTE_SHARED",
		Data: map[string]interface{}{
			"share_id":    shareId,
			"sender_id":   senderId,
			"receiver_id": receiverId,
			"note_id":     noteId,
		},
		OccurredAt: at,
	}
}
