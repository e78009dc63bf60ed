package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base contract every keyed store satisfies. Entities are
// validated before they reach the repository; implementations only persist.
//
// Two interchangeable implementations exist: an in-memory map store for tests
// and development, and a GORM-backed store for production. Both report an
// unknown id through ErrNotFound so callers stay implementation-agnostic.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
}
