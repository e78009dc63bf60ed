package rental

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/authz"
	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/domain/rental"
	"github.com/stayhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ListingService handles listing-related business operations
type ListingService struct {
	listingRepo rental.ListingRepository
	amenityRepo rental.AmenityRepository
	accountRepo identity.AccountRepository
	logger      *zap.Logger
}

// NewListingService creates a new ListingService
func NewListingService(
	listingRepo rental.ListingRepository,
	amenityRepo rental.AmenityRepository,
	accountRepo identity.AccountRepository,
	logger *zap.Logger,
) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		amenityRepo: amenityRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Create creates a new listing owned by the actor. Every referenced amenity
// must exist.
func (s *ListingService) Create(ctx context.Context, actor authz.Actor, input CreateListingInput) (*ListingResult, error) {
	if _, err := s.accountRepo.FindByID(ctx, actor.ID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeReferenceNotFound, "Owner account not found")
		}
		return nil, err
	}

	listing, err := rental.NewListing(input.Title, input.Description, input.Price, input.Latitude, input.Longitude, actor.ID)
	if err != nil {
		return nil, err
	}

	for _, amenityID := range input.AmenityIDs {
		if err := s.resolveAmenity(ctx, amenityID); err != nil {
			return nil, err
		}
		listing.AddAmenity(amenityID)
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		s.logger.Error("Failed to create listing", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Listing created",
		zap.String("listing_id", listing.ID.String()),
		zap.String("owner_id", listing.OwnerID.String()))

	return ToListingResult(listing), nil
}

// Get retrieves a listing by ID
func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*ListingResult, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToListingResult(listing), nil
}

// List retrieves all listings in creation order
func (s *ListingService) List(ctx context.Context) ([]*ListingResult, error) {
	listings, err := s.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toListingResults(listings), nil
}

// GetByOwner retrieves all listings owned by the given account
func (s *ListingService) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingResult, error) {
	listings, err := s.listingRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toListingResults(listings), nil
}

// Update applies a partial update to a listing. The owner and admins may
// update.
func (s *ListingService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateListingInput) (*ListingResult, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModifyListing(actor, listing.OwnerID) {
		return nil, shared.ErrForbidden
	}

	if input.Title != nil {
		if err := listing.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		listing.SetDescription(*input.Description)
	}
	if input.Price != nil {
		if err := listing.SetPrice(*input.Price); err != nil {
			return nil, err
		}
	}
	if input.Latitude != nil || input.Longitude != nil {
		latitude := listing.Latitude
		longitude := listing.Longitude
		if input.Latitude != nil {
			latitude = input.Latitude
		}
		if input.Longitude != nil {
			longitude = input.Longitude
		}
		if err := listing.SetCoordinates(latitude, longitude); err != nil {
			return nil, err
		}
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		s.logger.Error("Failed to update listing", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Listing updated", zap.String("listing_id", listing.ID.String()))

	return ToListingResult(listing), nil
}

// Delete removes a listing together with its reviews and amenity links. The
// owner and admins may delete.
func (s *ListingService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanModifyListing(actor, listing.OwnerID) {
		return shared.ErrForbidden
	}

	if err := s.listingRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete listing", zap.Error(err))
		return err
	}

	s.logger.Info("Listing deleted", zap.String("listing_id", id.String()))
	return nil
}

// AddAmenity associates an existing amenity with a listing. Adding an already
// associated amenity is a no-op.
func (s *ListingService) AddAmenity(ctx context.Context, actor authz.Actor, listingID, amenityID uuid.UUID) (*ListingResult, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if !authz.CanModifyListing(actor, listing.OwnerID) {
		return nil, shared.ErrForbidden
	}

	if err := s.resolveAmenity(ctx, amenityID); err != nil {
		return nil, err
	}

	if !listing.HasAmenity(amenityID) {
		listing.AddAmenity(amenityID)
		if err := s.listingRepo.Update(ctx, listing); err != nil {
			s.logger.Error("Failed to add amenity to listing", zap.Error(err))
			return nil, err
		}
	}

	return ToListingResult(listing), nil
}

// RemoveAmenity drops an amenity association from a listing. Removing an
// absent association is a no-op.
func (s *ListingService) RemoveAmenity(ctx context.Context, actor authz.Actor, listingID, amenityID uuid.UUID) (*ListingResult, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if !authz.CanModifyListing(actor, listing.OwnerID) {
		return nil, shared.ErrForbidden
	}

	if listing.HasAmenity(amenityID) {
		listing.RemoveAmenity(amenityID)
		if err := s.listingRepo.Update(ctx, listing); err != nil {
			s.logger.Error("Failed to remove amenity from listing", zap.Error(err))
			return nil, err
		}
	}

	return ToListingResult(listing), nil
}

func (s *ListingService) resolveAmenity(ctx context.Context, amenityID uuid.UUID) error {
	if _, err := s.amenityRepo.FindByID(ctx, amenityID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError(shared.CodeReferenceNotFound, "Amenity not found")
		}
		return err
	}
	return nil
}

func toListingResults(listings []*rental.Listing) []*ListingResult {
	results := make([]*ListingResult, len(listings))
	for i, listing := range listings {
		results[i] = ToListingResult(listing)
	}
	return results
}
