package rental

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayhub/backend/internal/domain/shared"
)

// Listing represents a rentable property. Amenity associations are carried as
// an ordered id slice; reviews reference the listing by foreign key and are
// cascade-deleted with it.
type Listing struct {
	shared.BaseEntity
	Title       string
	Description string
	Price       decimal.Decimal
	Latitude    *float64
	Longitude   *float64
	OwnerID     uuid.UUID
	AmenityIDs  []uuid.UUID
}

// NewListing creates a listing owned by ownerID. The caller verifies the
// owner exists before persisting.
func NewListing(title, description string, price decimal.Decimal, latitude, longitude *float64, ownerID uuid.UUID) (*Listing, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Owner is required")
	}

	return &Listing{
		BaseEntity:  shared.NewBaseEntity(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		AmenityIDs:  make([]uuid.UUID, 0),
	}, nil
}

// SetTitle updates the title
func (l *Listing) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	l.Title = strings.TrimSpace(title)
	l.Touch()
	return nil
}

// SetDescription updates the free-text description
func (l *Listing) SetDescription(description string) {
	l.Description = description
	l.Touch()
}

// SetPrice updates the nightly price
func (l *Listing) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	l.Price = price
	l.Touch()
	return nil
}

// SetCoordinates updates latitude and longitude together
func (l *Listing) SetCoordinates(latitude, longitude *float64) error {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return err
	}
	l.Latitude = latitude
	l.Longitude = longitude
	l.Touch()
	return nil
}

// AddAmenity associates an amenity with the listing. Adding an amenity that
// is already present is a no-op, never a duplicate.
func (l *Listing) AddAmenity(amenityID uuid.UUID) {
	if l.HasAmenity(amenityID) {
		return
	}
	l.AmenityIDs = append(l.AmenityIDs, amenityID)
	l.Touch()
}

// RemoveAmenity drops an amenity association. Removing an absent amenity is
// a no-op.
func (l *Listing) RemoveAmenity(amenityID uuid.UUID) {
	for i, id := range l.AmenityIDs {
		if id == amenityID {
			l.AmenityIDs = append(l.AmenityIDs[:i], l.AmenityIDs[i+1:]...)
			l.Touch()
			return
		}
	}
}

// HasAmenity reports whether the amenity is associated with the listing
func (l *Listing) HasAmenity(amenityID uuid.UUID) bool {
	for _, id := range l.AmenityIDs {
		if id == amenityID {
			return true
		}
	}
	return false
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Title cannot be empty")
	}
	if utf8.RuneCountInString(title) > 100 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Title cannot exceed 100 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Price must not be negative")
	}
	return nil
}

func validateCoordinates(latitude, longitude *float64) error {
	if latitude != nil && (*latitude < -90 || *latitude > 90) {
		return shared.NewDomainError(shared.CodeInvalidInput, "Latitude must be between -90 and 90")
	}
	if longitude != nil && (*longitude < -180 || *longitude > 180) {
		return shared.NewDomainError(shared.CodeInvalidInput, "Longitude must be between -180 and 180")
	}
	return nil
}
