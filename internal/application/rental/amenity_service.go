package rental

import (
	"context"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/authz"
	"github.com/stayhub/backend/internal/domain/rental"
	"github.com/stayhub/backend/internal/domain/shared"
)

// AmenityService handles amenity catalog operations. All mutations are
// admin-only.
type AmenityService struct {
	amenityRepo rental.AmenityRepository
}

// NewAmenityService creates a new AmenityService
func NewAmenityService(amenityRepo rental.AmenityRepository) *AmenityService {
	return &AmenityService{amenityRepo: amenityRepo}
}

// Create creates a new amenity with a globally unique name
func (s *AmenityService) Create(ctx context.Context, actor authz.Actor, input CreateAmenityInput) (*AmenityResult, error) {
	if !authz.RequiresAdmin(actor) {
		return nil, shared.ErrForbidden
	}

	exists, err := s.amenityRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Amenity with this name already exists")
	}

	amenity, err := rental.NewAmenity(input.Name, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.amenityRepo.Create(ctx, amenity); err != nil {
		return nil, err
	}

	return ToAmenityResult(amenity), nil
}

// Get retrieves an amenity by ID
func (s *AmenityService) Get(ctx context.Context, id uuid.UUID) (*AmenityResult, error) {
	amenity, err := s.amenityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAmenityResult(amenity), nil
}

// List retrieves all amenities in creation order
func (s *AmenityService) List(ctx context.Context) ([]*AmenityResult, error) {
	amenities, err := s.amenityRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*AmenityResult, len(amenities))
	for i, amenity := range amenities {
		results[i] = ToAmenityResult(amenity)
	}
	return results, nil
}

// Update applies a partial update to an amenity. Name changes re-check
// uniqueness.
func (s *AmenityService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateAmenityInput) (*AmenityResult, error) {
	if !authz.RequiresAdmin(actor) {
		return nil, shared.ErrForbidden
	}

	amenity, err := s.amenityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != amenity.Name {
		exists, err := s.amenityRepo.ExistsByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Amenity with this name already exists")
		}
		if err := amenity.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := amenity.SetDescription(*input.Description); err != nil {
			return nil, err
		}
	}

	if err := s.amenityRepo.Update(ctx, amenity); err != nil {
		return nil, err
	}

	return ToAmenityResult(amenity), nil
}

// Delete removes an amenity and its listing associations
func (s *AmenityService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	if !authz.RequiresAdmin(actor) {
		return shared.ErrForbidden
	}
	return s.amenityRepo.Delete(ctx, id)
}
