package rental

import (
	"strings"
	"unicode/utf8"

	"github.com/stayhub/backend/internal/domain/shared"
)

// Amenity is a named feature attachable to listings. Names are globally
// unique; uniqueness is enforced by the service against the repository.
type Amenity struct {
	shared.BaseEntity
	Name        string
	Description string
}

// NewAmenity creates an amenity
func NewAmenity(name, description string) (*Amenity, error) {
	if err := validateAmenityName(name); err != nil {
		return nil, err
	}
	if err := validateAmenityDescription(description); err != nil {
		return nil, err
	}

	return &Amenity{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: description,
	}, nil
}

// SetName updates the amenity name
func (a *Amenity) SetName(name string) error {
	if err := validateAmenityName(name); err != nil {
		return err
	}
	a.Name = strings.TrimSpace(name)
	a.Touch()
	return nil
}

// SetDescription updates the amenity description
func (a *Amenity) SetDescription(description string) error {
	if err := validateAmenityDescription(description); err != nil {
		return err
	}
	a.Description = description
	a.Touch()
	return nil
}

func validateAmenityName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Amenity name cannot be empty")
	}
	if utf8.RuneCountInString(name) > 50 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Amenity name cannot exceed 50 characters")
	}
	return nil
}

func validateAmenityDescription(description string) error {
	if utf8.RuneCountInString(description) > 255 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Amenity description cannot exceed 255 characters")
	}
	return nil
}
