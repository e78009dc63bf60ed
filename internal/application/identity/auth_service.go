package identity

import (
	"context"

	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	accountRepo  identity.AccountRepository
	tokenService *auth.TokenService
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	accountRepo identity.AccountRepository,
	tokenService *auth.TokenService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		accountRepo:  accountRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login authenticates an account and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email")
		return nil, shared.NewDomainError(shared.CodeInvalidCredentials, "Invalid email or password")
	}

	if !account.VerifyPassword(input.Password) {
		s.logger.Warn("Login attempt with wrong password",
			zap.String("account_id", account.ID.String()))
		return nil, shared.NewDomainError(shared.CodeInvalidCredentials, "Invalid email or password")
	}

	token, err := s.tokenService.Generate(account.ID, account.Email, account.IsAdmin)
	if err != nil {
		s.logger.Error("Failed to generate access token", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Failed to generate authentication token")
	}

	s.logger.Info("Account logged in", zap.String("account_id", account.ID.String()))

	return &LoginResult{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		Account:     *ToAccountResult(account),
	}, nil
}
