package contract

import (
	"context"

	"github.com/google/uuid"

	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/repository/specification"
)

// ShareRepository is append-only apart from the user-delete cascade;
// shares are never updated.
type ShareRepository interface {
	Create(ctx context.Context, share *entity.Share) error
	DeleteAllForUser(ctx context.Context, userId uuid.UUID) error
	DeleteAllForNote(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Share, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Share, error)
}
