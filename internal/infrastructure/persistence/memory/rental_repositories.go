package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/rental"
)

// ListingRepository is an in-memory implementation of rental.ListingRepository.
// Deleting a listing cascades to its reviews when a review repository is
// attached via SetReviewRepository.
type ListingRepository struct {
	store   *store[rental.Listing]
	reviews *ReviewRepository
}

// NewListingRepository creates an empty in-memory listing repository
func NewListingRepository() *ListingRepository {
	return &ListingRepository{
		store: newStore(
			func(l *rental.Listing) uuid.UUID { return l.ID },
			cloneListing,
		),
	}
}

// SetReviewRepository attaches the review repository used for cascade deletes
func (r *ListingRepository) SetReviewRepository(reviews *ReviewRepository) {
	r.reviews = reviews
}

func cloneListing(l *rental.Listing) *rental.Listing {
	clone := *l
	clone.AmenityIDs = make([]uuid.UUID, len(l.AmenityIDs))
	copy(clone.AmenityIDs, l.AmenityIDs)
	return &clone
}

func (r *ListingRepository) Create(_ context.Context, listing *rental.Listing) error {
	return r.store.create(listing)
}

func (r *ListingRepository) Update(_ context.Context, listing *rental.Listing) error {
	return r.store.update(listing)
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.delete(id); err != nil {
		return err
	}
	if r.reviews != nil {
		return r.reviews.DeleteByPlaceID(ctx, id)
	}
	return nil
}

func (r *ListingRepository) FindByID(_ context.Context, id uuid.UUID) (*rental.Listing, error) {
	return r.store.findByID(id)
}

func (r *ListingRepository) FindAll(_ context.Context) ([]*rental.Listing, error) {
	return r.store.findAll(), nil
}

func (r *ListingRepository) FindByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*rental.Listing, error) {
	return r.store.findWhere(func(l *rental.Listing) bool {
		return l.OwnerID == ownerID
	}), nil
}

var _ rental.ListingRepository = (*ListingRepository)(nil)

// AmenityRepository is an in-memory implementation of rental.AmenityRepository.
// Deleting an amenity detaches it from all listings when a listing repository
// is attached via SetListingRepository.
type AmenityRepository struct {
	store    *store[rental.Amenity]
	listings *ListingRepository
}

// NewAmenityRepository creates an empty in-memory amenity repository
func NewAmenityRepository() *AmenityRepository {
	return &AmenityRepository{
		store: newStore(
			func(a *rental.Amenity) uuid.UUID { return a.ID },
			func(a *rental.Amenity) *rental.Amenity {
				clone := *a
				return &clone
			},
		),
	}
}

// SetListingRepository attaches the listing repository used to detach deleted
// amenities
func (r *AmenityRepository) SetListingRepository(listings *ListingRepository) {
	r.listings = listings
}

func (r *AmenityRepository) Create(_ context.Context, amenity *rental.Amenity) error {
	return r.store.create(amenity)
}

func (r *AmenityRepository) Update(_ context.Context, amenity *rental.Amenity) error {
	return r.store.update(amenity)
}

func (r *AmenityRepository) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.store.delete(id); err != nil {
		return err
	}
	if r.listings != nil {
		r.listings.store.mutateAll(func(l *rental.Listing) {
			l.RemoveAmenity(id)
		})
	}
	return nil
}

func (r *AmenityRepository) FindByID(_ context.Context, id uuid.UUID) (*rental.Amenity, error) {
	return r.store.findByID(id)
}

func (r *AmenityRepository) FindAll(_ context.Context) ([]*rental.Amenity, error) {
	return r.store.findAll(), nil
}

func (r *AmenityRepository) FindByName(_ context.Context, name string) (*rental.Amenity, error) {
	return r.store.findFirst(func(a *rental.Amenity) bool {
		return a.Name == name
	})
}

func (r *AmenityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := r.FindByName(ctx, name)
	if err != nil {
		return false, nil
	}
	return true, nil
}

var _ rental.AmenityRepository = (*AmenityRepository)(nil)

// ReviewRepository is an in-memory implementation of rental.ReviewRepository
type ReviewRepository struct {
	store *store[rental.Review]
}

// NewReviewRepository creates an empty in-memory review repository
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{
		store: newStore(
			func(rv *rental.Review) uuid.UUID { return rv.ID },
			func(rv *rental.Review) *rental.Review {
				clone := *rv
				return &clone
			},
		),
	}
}

func (r *ReviewRepository) Create(_ context.Context, review *rental.Review) error {
	return r.store.create(review)
}

func (r *ReviewRepository) Update(_ context.Context, review *rental.Review) error {
	return r.store.update(review)
}

func (r *ReviewRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.store.delete(id)
}

func (r *ReviewRepository) FindByID(_ context.Context, id uuid.UUID) (*rental.Review, error) {
	return r.store.findByID(id)
}

func (r *ReviewRepository) FindAll(_ context.Context) ([]*rental.Review, error) {
	return r.store.findAll(), nil
}

func (r *ReviewRepository) FindByPlaceID(_ context.Context, placeID uuid.UUID) ([]*rental.Review, error) {
	return r.store.findWhere(func(rv *rental.Review) bool {
		return rv.PlaceID == placeID
	}), nil
}

func (r *ReviewRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*rental.Review, error) {
	return r.store.findWhere(func(rv *rental.Review) bool {
		return rv.UserID == userID
	}), nil
}

func (r *ReviewRepository) FindByUserAndPlace(_ context.Context, userID, placeID uuid.UUID) (*rental.Review, error) {
	return r.store.findFirst(func(rv *rental.Review) bool {
		return rv.UserID == userID && rv.PlaceID == placeID
	})
}

func (r *ReviewRepository) DeleteByPlaceID(_ context.Context, placeID uuid.UUID) error {
	r.store.deleteWhere(func(rv *rental.Review) bool {
		return rv.PlaceID == placeID
	})
	return nil
}

var _ rental.ReviewRepository = (*ReviewRepository)(nil)
