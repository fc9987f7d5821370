package unitofwork

import (
	"context"

	"sharenotes-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. After Begin,
// every repository returned runs inside the same transaction until Commit or
// Rollback; without Begin they run directly against the connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FriendshipRepository() contract.FriendshipRepository
	NoteRepository() contract.NoteRepository
	RequestRepository() contract.RequestRepository
	ShareRepository() contract.ShareRepository
}
