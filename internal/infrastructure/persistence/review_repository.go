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

// GormReviewRepository implements rental.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create inserts a new review
func (r *GormReviewRepository) Create(ctx context.Context, review *rental.Review) error {
	model := models.ReviewModelFromDomain(review)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists an existing review
func (r *GormReviewRepository) Update(ctx context.Context, review *rental.Review) error {
	model := models.ReviewModelFromDomain(review)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a review by ID
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a review by ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all reviews in creation order
func (r *GormReviewRepository) FindAll(ctx context.Context) ([]*rental.Review, error) {
	var reviewModels []*models.ReviewModel
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&reviewModels).Error; err != nil {
		return nil, err
	}
	return toDomainReviews(reviewModels), nil
}

// FindByPlaceID returns all reviews for the given listing
func (r *GormReviewRepository) FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*rental.Review, error) {
	var reviewModels []*models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("created_at asc").
		Find(&reviewModels).Error; err != nil {
		return nil, err
	}
	return toDomainReviews(reviewModels), nil
}

// FindByUserID returns all reviews written by the given account
func (r *GormReviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*rental.Review, error) {
	var reviewModels []*models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&reviewModels).Error; err != nil {
		return nil, err
	}
	return toDomainReviews(reviewModels), nil
}

// FindByUserAndPlace finds the review the given account wrote for the given listing
func (r *GormReviewRepository) FindByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*rental.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByPlaceID removes all reviews for the given listing
func (r *GormReviewRepository) DeleteByPlaceID(ctx context.Context, placeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Delete(&models.ReviewModel{}).Error
}

func toDomainReviews(reviewModels []*models.ReviewModel) []*rental.Review {
	reviews := make([]*rental.Review, len(reviewModels))
	for i, model := range reviewModels {
		reviews[i] = model.ToDomain()
	}
	return reviews
}

// Ensure GormReviewRepository implements ReviewRepository
var _ rental.ReviewRepository = (*GormReviewRepository)(nil)
