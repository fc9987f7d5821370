package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Friendship is one direction of the symmetric friend relation.
// The request engine always writes and deletes these in mutual pairs,
// so for every (UserId, FriendId) row a (FriendId, UserId) row exists.
type Friendship struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	FriendId  uuid.UUID
	CreatedAt time.Time
}
