package identity

import (
	"strings"
	"testing"

	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("creates account with valid inputs", func(t *testing.T) {
		account, err := NewAccount("Jane", "Doe", "jane@example.com", "secret", false)
		require.NoError(t, err)
		require.NotNil(t, account)

		assert.Equal(t, "Jane", account.FirstName)
		assert.Equal(t, "Doe", account.LastName)
		assert.Equal(t, "jane@example.com", account.Email)
		assert.False(t, account.IsAdmin)
		assert.NotEmpty(t, account.ID)
		assert.NotEmpty(t, account.PasswordHash)
		assert.NotEqual(t, "secret", account.PasswordHash)
		assert.False(t, account.CreatedAt.IsZero())
		assert.Equal(t, account.CreatedAt, account.UpdatedAt)
	})

	t.Run("trims whitespace from names", func(t *testing.T) {
		account, err := NewAccount("  Jane  ", " Doe ", "jane@example.com", "secret", false)
		require.NoError(t, err)
		assert.Equal(t, "Jane", account.FirstName)
		assert.Equal(t, "Doe", account.LastName)
	})

	t.Run("fails with empty first name", func(t *testing.T) {
		_, err := NewAccount("", "Doe", "jane@example.com", "secret", false)
		assertInvalidInput(t, err)
	})

	t.Run("fails with first name over 50 characters", func(t *testing.T) {
		_, err := NewAccount(strings.Repeat("a", 51), "Doe", "jane@example.com", "secret", false)
		assertInvalidInput(t, err)
	})

	t.Run("accepts first name of exactly 50 characters", func(t *testing.T) {
		_, err := NewAccount(strings.Repeat("a", 50), "Doe", "jane@example.com", "secret", false)
		assert.NoError(t, err)
	})

	t.Run("name length counts characters, not bytes", func(t *testing.T) {
		account, err := NewAccount(strings.Repeat("ø", 50), "Doe", "jane@example.com", "secret", false)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("ø", 50), account.FirstName)

		_, err = NewAccount(strings.Repeat("ø", 51), "Doe", "jane@example.com", "secret", false)
		assertInvalidInput(t, err)
	})

	t.Run("fails with empty last name", func(t *testing.T) {
		_, err := NewAccount("Jane", "  ", "jane@example.com", "secret", false)
		assertInvalidInput(t, err)
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		for _, email := range []string{"", "jane", "jane@", "@example.com", "jane@example", "jane example@foo.com"} {
			_, err := NewAccount("Jane", "Doe", email, "secret", false)
			assertInvalidInput(t, err)
		}
	})

	t.Run("fails with empty password", func(t *testing.T) {
		_, err := NewAccount("Jane", "Doe", "jane@example.com", "", false)
		assertInvalidInput(t, err)
	})

	t.Run("admin flag is honored", func(t *testing.T) {
		account, err := NewAccount("Jane", "Doe", "jane@example.com", "secret", true)
		require.NoError(t, err)
		assert.True(t, account.IsAdmin)
	})
}

func TestAccountVerifyPassword(t *testing.T) {
	account, err := NewAccount("Jane", "Doe", "jane@example.com", "secret", false)
	require.NoError(t, err)

	assert.True(t, account.VerifyPassword("secret"))
	assert.False(t, account.VerifyPassword("wrong"))
	assert.False(t, account.VerifyPassword(""))
}

func TestAccountSetters(t *testing.T) {
	newAccount := func(t *testing.T) *Account {
		account, err := NewAccount("Jane", "Doe", "jane@example.com", "secret", false)
		require.NoError(t, err)
		return account
	}

	t.Run("SetFirstName validates and touches", func(t *testing.T) {
		account := newAccount(t)
		before := account.UpdatedAt

		require.NoError(t, account.SetFirstName("Janet"))
		assert.Equal(t, "Janet", account.FirstName)
		assert.False(t, account.UpdatedAt.Before(before))

		assertInvalidInput(t, account.SetFirstName(""))
		assert.Equal(t, "Janet", account.FirstName)
	})

	t.Run("SetEmail validates format", func(t *testing.T) {
		account := newAccount(t)

		require.NoError(t, account.SetEmail("janet@example.com"))
		assert.Equal(t, "janet@example.com", account.Email)

		assertInvalidInput(t, account.SetEmail("not-an-email"))
		assert.Equal(t, "janet@example.com", account.Email)
	})

	t.Run("SetPassword re-hashes", func(t *testing.T) {
		account := newAccount(t)
		oldHash := account.PasswordHash

		require.NoError(t, account.SetPassword("newsecret"))
		assert.NotEqual(t, oldHash, account.PasswordHash)
		assert.True(t, account.VerifyPassword("newsecret"))
		assert.False(t, account.VerifyPassword("secret"))

		assertInvalidInput(t, account.SetPassword(""))
	})

	t.Run("SetAdmin toggles the flag", func(t *testing.T) {
		account := newAccount(t)
		account.SetAdmin(true)
		assert.True(t, account.IsAdmin)
		account.SetAdmin(false)
		assert.False(t, account.IsAdmin)
	})
}

func TestAccountFullName(t *testing.T) {
	account, err := NewAccount("Jane", "Doe", "jane@example.com", "secret", false)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", account.FullName())
}

func assertInvalidInput(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeInvalidInput, domainErr.Code)
}
