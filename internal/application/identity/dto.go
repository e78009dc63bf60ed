package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/identity"
)

// CreateAccountInput represents a request to create a new account
type CreateAccountInput struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=1"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateAccountInput represents a partial account update. Nil fields are left
// untouched. Email, Password and IsAdmin may only be changed by admins.
type UpdateAccountInput struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=50"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=1"`
	IsAdmin   *bool   `json:"is_admin"`
}

// AccountResult represents an account in service results. The password hash is
// never carried here.
type AccountResult struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToAccountResult converts a domain Account to AccountResult
func ToAccountResult(a *identity.Account) *AccountResult {
	return &AccountResult{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		IsAdmin:   a.IsAdmin,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// LoginInput represents a login request
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult represents a successful login
type LoginResult struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Account     AccountResult `json:"account"`
}
