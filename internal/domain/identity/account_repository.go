package identity

import (
	"context"

	"github.com/stayhub/backend/internal/domain/shared"
)

// AccountRepository defines persistence operations for accounts
type AccountRepository interface {
	shared.Repository[Account]
	// FindByEmail matches the email exactly (case-sensitive).
	// Returns shared.ErrNotFound when no account carries it.
	FindByEmail(ctx context.Context, email string) (*Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
