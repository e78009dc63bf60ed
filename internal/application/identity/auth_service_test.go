package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/infrastructure/auth"
	"github.com/stayhub/backend/internal/infrastructure/config"
	"github.com/stayhub/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthServiceFixture(t *testing.T) (*AuthService, *auth.TokenService, *identity.Account) {
	t.Helper()

	repo := memory.NewAccountRepository()
	tokenService := auth.NewTokenService(config.JWTConfig{
		Secret:     "test-secret-key-for-token-signing",
		Expiration: time.Hour,
		Issuer:     "stayhub-test",
	})

	account, err := identity.NewAccount("Jane", "Doe", "jane@example.com", "secret", true)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), account))

	return NewAuthService(repo, tokenService, zap.NewNop()), tokenService, account
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a token and account summary", func(t *testing.T) {
		service, tokenService, account := newAuthServiceFixture(t)

		result, err := service.Login(ctx, LoginInput{Email: "jane@example.com", Password: "secret"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, account.ID, result.Account.ID)
		assert.Equal(t, "jane@example.com", result.Account.Email)

		claims, err := tokenService.Validate(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, account.ID.String(), claims.AccountID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		service, _, _ := newAuthServiceFixture(t)

		_, errUnknown := service.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret"})
		_, errWrongPw := service.Login(ctx, LoginInput{Email: "jane@example.com", Password: "wrong"})

		var unknownErr, wrongPwErr *shared.DomainError
		require.ErrorAs(t, errUnknown, &unknownErr)
		require.ErrorAs(t, errWrongPw, &wrongPwErr)
		assert.Equal(t, shared.CodeInvalidCredentials, unknownErr.Code)
		assert.Equal(t, wrongPwErr.Code, unknownErr.Code)
		assert.Equal(t, wrongPwErr.Message, unknownErr.Message)
	})

	t.Run("email comparison is case-sensitive", func(t *testing.T) {
		service, _, _ := newAuthServiceFixture(t)

		_, err := service.Login(ctx, LoginInput{Email: "Jane@Example.com", Password: "secret"})
		assertCode(t, err, shared.CodeInvalidCredentials)
	})
}
