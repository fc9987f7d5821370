package contract

import (
	"context"

	"github.com/google/uuid"

	"sharenotes-be/internal/entity"
	"sharenotes-be/internal/repository/specification"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	Update(ctx context.Context, request *entity.Request) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteBetweenUsers purges every historical request between the pair,
	// in both directions and regardless of status.
	DeleteBetweenUsers(ctx context.Context, a, b uuid.UUID) error
	DeleteAllForUser(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Request, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Request, error)
}
