package contract

import (
	"context"

	"github.com/google/uuid"

	"sharenotes-be/internal/entity"
)

// FriendshipRepository stores single directions of the friend relation.
// Callers are responsible for writing and deleting both directions; the
// unit of work supplies the transaction that keeps the pair atomic.
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *entity.Friendship) error
	Delete(ctx context.Context, userId, friendId uuid.UUID) error
	DeleteAllForUser(ctx context.Context, userId uuid.UUID) error
	Exists(ctx context.Context, userId, friendId uuid.UUID) (bool, error)
	FriendIDs(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error)
}
