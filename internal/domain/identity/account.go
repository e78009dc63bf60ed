package identity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stayhub/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Account represents a marketplace account. It owns zero or more listings and
// zero or more reviews through foreign keys; the entity itself carries no
// relationship state.
type Account struct {
	shared.BaseEntity
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// NewAccount creates an account with a freshly hashed password.
// All field-level invariants are checked before anything is persisted.
func NewAccount(firstName, lastName, email, password string, isAdmin bool) (*Account, error) {
	if err := validateName("First name", firstName); err != nil {
		return nil, err
	}
	if err := validateName("Last name", lastName); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Password cannot be empty")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeInternal, "Failed to hash password")
	}

	return &Account{
		BaseEntity:   shared.NewBaseEntity(),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}, nil
}

// SetFirstName updates the first name
func (a *Account) SetFirstName(firstName string) error {
	if err := validateName("First name", firstName); err != nil {
		return err
	}
	a.FirstName = strings.TrimSpace(firstName)
	a.Touch()
	return nil
}

// SetLastName updates the last name
func (a *Account) SetLastName(lastName string) error {
	if err := validateName("Last name", lastName); err != nil {
		return err
	}
	a.LastName = strings.TrimSpace(lastName)
	a.Touch()
	return nil
}

// SetEmail updates the email address. Uniqueness is the service's concern;
// emails compare case-sensitively.
func (a *Account) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	a.Email = email
	a.Touch()
	return nil
}

// SetAdmin updates the admin flag
func (a *Account) SetAdmin(isAdmin bool) {
	a.IsAdmin = isAdmin
	a.Touch()
}

// SetPassword hashes and stores a new password
func (a *Account) SetPassword(password string) error {
	if password == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Password cannot be empty")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError(shared.CodeInternal, "Failed to hash password")
	}
	a.PasswordHash = hash
	a.Touch()
	return nil
}

// VerifyPassword reports whether the plaintext matches the stored hash
func (a *Account) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// FullName returns the display form of the account's name
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

func validateName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, field+" cannot be empty")
	}
	if utf8.RuneCountInString(value) > 50 {
		return shared.NewDomainError(shared.CodeInvalidInput, field+" cannot exceed 50 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
