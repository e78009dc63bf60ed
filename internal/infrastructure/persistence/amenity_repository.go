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

// GormAmenityRepository implements rental.AmenityRepository using GORM
type GormAmenityRepository struct {
	db *gorm.DB
}

// NewGormAmenityRepository creates a new GormAmenityRepository
func NewGormAmenityRepository(db *gorm.DB) *GormAmenityRepository {
	return &GormAmenityRepository{db: db}
}

// Create inserts a new amenity
func (r *GormAmenityRepository) Create(ctx context.Context, amenity *rental.Amenity) error {
	model := models.AmenityModelFromDomain(amenity)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists an existing amenity
func (r *GormAmenityRepository) Update(ctx context.Context, amenity *rental.Amenity) error {
	model := models.AmenityModelFromDomain(amenity)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an amenity together with its listing links
func (r *GormAmenityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("amenity_id = ?", id).
			Delete(&models.ListingAmenityModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.AmenityModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds an amenity by ID
func (r *GormAmenityRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Amenity, error) {
	var model models.AmenityModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all amenities in creation order
func (r *GormAmenityRepository) FindAll(ctx context.Context) ([]*rental.Amenity, error) {
	var amenityModels []*models.AmenityModel
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&amenityModels).Error; err != nil {
		return nil, err
	}

	amenities := make([]*rental.Amenity, len(amenityModels))
	for i, model := range amenityModels {
		amenities[i] = model.ToDomain()
	}
	return amenities, nil
}

// FindByName finds an amenity by exact name match
func (r *GormAmenityRepository) FindByName(ctx context.Context, name string) (*rental.Amenity, error) {
	if name == "" {
		return nil, shared.ErrNotFound
	}
	var model models.AmenityModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByName checks if an amenity name is already taken
func (r *GormAmenityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AmenityModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormAmenityRepository implements AmenityRepository
var _ rental.AmenityRepository = (*GormAmenityRepository)(nil)
