package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(255);not null"`
	LastName     string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// Friendship holds one direction of the friend relation. Rows always come in
// mutual pairs; the pair index stops the same direction being written twice.
type Friendship struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	FriendId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Friendship) TableName() string {
	return "friendships"
}
