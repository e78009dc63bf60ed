package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(expiration time.Duration) *TokenService {
	return NewTokenService(config.JWTConfig{
		Secret:     "test-secret-key-for-token-signing",
		Expiration: expiration,
		Issuer:     "stayhub-test",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	accountID := uuid.New()

	token, err := svc.Generate(accountID, "jane@example.com", true)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	claims, err := svc.Validate(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.AccountID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "stayhub-test", claims.Issuer)

	parsed, err := claims.GetAccountUUID()
	require.NoError(t, err)
	assert.Equal(t, accountID, parsed)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(time.Hour)
	other := NewTokenService(config.JWTConfig{
		Secret:     "a-completely-different-secret-key",
		Expiration: time.Hour,
		Issuer:     "stayhub-test",
	})

	token, err := svc.Generate(uuid.New(), "jane@example.com", false)
	require.NoError(t, err)

	_, err = other.Validate(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(-time.Minute)

	token, err := svc.Generate(uuid.New(), "jane@example.com", false)
	require.NoError(t, err)

	_, err = svc.Validate(token.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestExpiration(t *testing.T) {
	svc := newTestTokenService(42 * time.Minute)
	assert.Equal(t, 42*time.Minute, svc.Expiration())
}
