package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/identity"
)

// AccountRepository is an in-memory implementation of identity.AccountRepository
type AccountRepository struct {
	store *store[identity.Account]
}

// NewAccountRepository creates an empty in-memory account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		store: newStore(
			func(a *identity.Account) uuid.UUID { return a.ID },
			func(a *identity.Account) *identity.Account {
				clone := *a
				return &clone
			},
		),
	}
}

func (r *AccountRepository) Create(_ context.Context, account *identity.Account) error {
	return r.store.create(account)
}

func (r *AccountRepository) Update(_ context.Context, account *identity.Account) error {
	return r.store.update(account)
}

func (r *AccountRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.store.delete(id)
}

func (r *AccountRepository) FindByID(_ context.Context, id uuid.UUID) (*identity.Account, error) {
	return r.store.findByID(id)
}

func (r *AccountRepository) FindAll(_ context.Context) ([]*identity.Account, error) {
	return r.store.findAll(), nil
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*identity.Account, error) {
	return r.store.findFirst(func(a *identity.Account) bool {
		return a.Email == email
	})
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *AccountRepository) Count(_ context.Context) (int64, error) {
	return r.store.count(), nil
}

var _ identity.AccountRepository = (*AccountRepository)(nil)
