package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/authz"
	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AccountService handles account management operations
type AccountService struct {
	accountRepo identity.AccountRepository
	logger      *zap.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo identity.AccountRepository, logger *zap.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Create creates a new account. Only admins may create accounts.
func (s *AccountService) Create(ctx context.Context, actor authz.Actor, input CreateAccountInput) (*AccountResult, error) {
	if !authz.RequiresAdmin(actor) {
		return nil, shared.ErrForbidden
	}

	exists, err := s.accountRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Email already registered")
	}

	account, err := identity.NewAccount(input.FirstName, input.LastName, input.Email, input.Password, input.IsAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.logger.Error("Failed to create account", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Account created",
		zap.String("account_id", account.ID.String()),
		zap.Bool("is_admin", account.IsAdmin))

	return ToAccountResult(account), nil
}

// Get retrieves an account by ID
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*AccountResult, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAccountResult(account), nil
}

// GetByEmail retrieves an account by its exact email
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*AccountResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return ToAccountResult(account), nil
}

// List retrieves all accounts in creation order
func (s *AccountService) List(ctx context.Context) ([]*AccountResult, error) {
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*AccountResult, len(accounts))
	for i, account := range accounts {
		results[i] = ToAccountResult(account)
	}
	return results, nil
}

// Update applies a partial update to an account. The account itself and admins
// may update; non-admins may not touch email, password or the admin flag.
func (s *AccountService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateAccountInput) (*AccountResult, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModifyAccount(actor, account.ID) {
		return nil, shared.ErrForbidden
	}
	if !actor.IsAdmin && (input.Email != nil || input.Password != nil || input.IsAdmin != nil) {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only administrators can change email, password or admin status")
	}

	if input.FirstName != nil {
		if err := account.SetFirstName(*input.FirstName); err != nil {
			return nil, err
		}
	}
	if input.LastName != nil {
		if err := account.SetLastName(*input.LastName); err != nil {
			return nil, err
		}
	}
	if input.Email != nil && *input.Email != account.Email {
		exists, err := s.accountRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Email already registered")
		}
		if err := account.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.Password != nil {
		if err := account.SetPassword(*input.Password); err != nil {
			return nil, err
		}
	}
	if input.IsAdmin != nil {
		account.SetAdmin(*input.IsAdmin)
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		s.logger.Error("Failed to update account", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Account updated", zap.String("account_id", account.ID.String()))

	return ToAccountResult(account), nil
}

// Delete removes an account. Only admins may delete accounts. Listings and
// reviews authored by the account are left in place.
func (s *AccountService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if !authz.RequiresAdmin(actor) {
		return shared.ErrForbidden
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Account deleted", zap.String("account_id", id.String()))
	return nil
}
