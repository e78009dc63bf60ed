package rental

import (
	"context"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/shared"
)

// ListingRepository defines persistence operations for listings.
// Delete removes the listing together with its reviews and amenity links.
type ListingRepository interface {
	shared.Repository[Listing]
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*Listing, error)
}

// AmenityRepository defines persistence operations for amenities
type AmenityRepository interface {
	shared.Repository[Amenity]
	// FindByName matches the name exactly. Returns shared.ErrNotFound when
	// no amenity carries it.
	FindByName(ctx context.Context, name string) (*Amenity, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// ReviewRepository defines persistence operations for reviews
type ReviewRepository interface {
	shared.Repository[Review]
	FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*Review, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Review, error)
	// FindByUserAndPlace returns shared.ErrNotFound when the pair has no review.
	FindByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*Review, error)
	DeleteByPlaceID(ctx context.Context, placeID uuid.UUID) error
}
