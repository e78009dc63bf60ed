package rental

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayhub/backend/internal/domain/rental"
)

// CreateListingInput represents a request to create a new listing. The actor
// becomes the owner.
type CreateListingInput struct {
	Title       string          `json:"title" binding:"required,min=1,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Latitude    *float64        `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64        `json:"longitude" binding:"omitempty,min=-180,max=180"`
	AmenityIDs  []uuid.UUID     `json:"amenity_ids"`
}

// UpdateListingInput represents a partial listing update. Nil fields are left
// untouched; coordinates cannot be cleared, only replaced.
type UpdateListingInput struct {
	Title       *string          `json:"title" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Latitude    *float64         `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64         `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

// ListingResult represents a listing in service results
type ListingResult struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	AmenityIDs  []uuid.UUID     `json:"amenity_ids"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToListingResult converts a domain Listing to ListingResult
func ToListingResult(l *rental.Listing) *ListingResult {
	amenityIDs := make([]uuid.UUID, len(l.AmenityIDs))
	copy(amenityIDs, l.AmenityIDs)

	return &ListingResult{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		OwnerID:     l.OwnerID,
		AmenityIDs:  amenityIDs,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// CreateAmenityInput represents a request to create a new amenity
type CreateAmenityInput struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	Description string `json:"description" binding:"max=255"`
}

// UpdateAmenityInput represents a partial amenity update
type UpdateAmenityInput struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// AmenityResult represents an amenity in service results
type AmenityResult struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToAmenityResult converts a domain Amenity to AmenityResult
func ToAmenityResult(a *rental.Amenity) *AmenityResult {
	return &AmenityResult{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// CreateReviewInput represents a request to review a listing. The actor
// becomes the author.
type CreateReviewInput struct {
	Text    string    `json:"text" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	PlaceID uuid.UUID `json:"place_id" binding:"required"`
}

// UpdateReviewInput represents a partial review update. Only text and rating
// can change; author and listing are fixed at creation.
type UpdateReviewInput struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ReviewResult represents a review in service results
type ReviewResult struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PlaceID   uuid.UUID `json:"place_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToReviewResult converts a domain Review to ReviewResult
func ToReviewResult(r *rental.Review) *ReviewResult {
	return &ReviewResult{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		PlaceID:   r.PlaceID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
