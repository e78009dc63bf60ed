package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/rental"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormListingRepository implements rental.ListingRepository using GORM
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GormListingRepository
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// Create inserts a new listing together with its amenity links
func (r *GormListingRepository) Create(ctx context.Context, listing *rental.Listing) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.ListingModelFromDomain(listing)
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return replaceAmenityLinks(tx, listing)
	})
}

// Update persists an existing listing and replaces its amenity links
func (r *GormListingRepository) Update(ctx context.Context, listing *rental.Listing) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.ListingModelFromDomain(listing)
		result := tx.Save(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if err := tx.Where("listing_id = ?", listing.ID).
			Delete(&models.ListingAmenityModel{}).Error; err != nil {
			return err
		}
		return replaceAmenityLinks(tx, listing)
	})
}

// Delete removes a listing together with its reviews and amenity links
func (r *GormListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", id).
			Delete(&models.ReviewModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).
			Delete(&models.ListingAmenityModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ListingModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a listing by ID, amenity links included
func (r *GormListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Listing, error) {
	var model models.ListingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	listing := model.ToDomain()
	if err := r.loadAmenityIDs(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// FindAll returns all listings in creation order
func (r *GormListingRepository) FindAll(ctx context.Context) ([]*rental.Listing, error) {
	var listingModels []*models.ListingModel
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainWithAmenities(ctx, listingModels)
}

// FindByOwnerID returns all listings owned by the given account
func (r *GormListingRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*rental.Listing, error) {
	var listingModels []*models.ListingModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainWithAmenities(ctx, listingModels)
}

func (r *GormListingRepository) toDomainWithAmenities(ctx context.Context, listingModels []*models.ListingModel) ([]*rental.Listing, error) {
	listings := make([]*rental.Listing, len(listingModels))
	for i, model := range listingModels {
		listing := model.ToDomain()
		if err := r.loadAmenityIDs(ctx, listing); err != nil {
			return nil, err
		}
		listings[i] = listing
	}
	return listings, nil
}

func (r *GormListingRepository) loadAmenityIDs(ctx context.Context, listing *rental.Listing) error {
	var links []models.ListingAmenityModel
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listing.ID).
		Order("position asc").
		Find(&links).Error; err != nil {
		return err
	}

	listing.AmenityIDs = make([]uuid.UUID, len(links))
	for i, link := range links {
		listing.AmenityIDs[i] = link.AmenityID
	}
	return nil
}

func replaceAmenityLinks(tx *gorm.DB, listing *rental.Listing) error {
	if len(listing.AmenityIDs) == 0 {
		return nil
	}
	links := make([]models.ListingAmenityModel, len(listing.AmenityIDs))
	for i, amenityID := range listing.AmenityIDs {
		links[i] = models.ListingAmenityModel{
			ListingID: listing.ID,
			AmenityID: amenityID,
			Position:  i,
			CreatedAt: listing.UpdatedAt,
		}
	}
	return tx.Create(&links).Error
}

// Ensure GormListingRepository implements ListingRepository
var _ rental.ListingRepository = (*GormListingRepository)(nil)
