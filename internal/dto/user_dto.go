package dto

import (
	"github.com/google/uuid"
)

type UserDTO struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// UpdateUserRequest carries a partial profile edit. Blank fields leave the
// stored value untouched.
type UpdateUserRequest struct {
	Id        uuid.UUID
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type SearchUsersRequest struct {
	UserId uuid.UUID
	Query  string `json:"query"`
}

type FriendListResponse struct {
	Friends []UserDTO `json:"friends"`
}
