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

// ReviewService handles review-related business operations
type ReviewService struct {
	reviewRepo  rental.ReviewRepository
	listingRepo rental.ListingRepository
	accountRepo identity.AccountRepository
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo rental.ReviewRepository,
	listingRepo rental.ListingRepository,
	accountRepo identity.AccountRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Create creates a review authored by the actor. The checks run in a fixed
// order: listing exists, author exists, author is not the owner, and the
// author has not reviewed this listing before.
func (s *ReviewService) Create(ctx context.Context, actor authz.Actor, input CreateReviewInput) (*ReviewResult, error) {
	listing, err := s.listingRepo.FindByID(ctx, input.PlaceID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeReferenceNotFound, "Listing not found")
		}
		return nil, err
	}

	if _, err := s.accountRepo.FindByID(ctx, actor.ID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeReferenceNotFound, "Author account not found")
		}
		return nil, err
	}

	if actor.ID == listing.OwnerID {
		return nil, shared.NewDomainError(shared.CodeSelfReview, "You cannot review your own listing")
	}

	if _, err := s.reviewRepo.FindByUserAndPlace(ctx, actor.ID, input.PlaceID); err == nil {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "You have already reviewed this listing")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	review, err := rental.NewReview(input.Text, input.Rating, input.PlaceID, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("listing_id", review.PlaceID.String()))

	return ToReviewResult(review), nil
}

// Get retrieves a review by ID
func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*ReviewResult, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToReviewResult(review), nil
}

// List retrieves all reviews in creation order
func (s *ReviewService) List(ctx context.Context) ([]*ReviewResult, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toReviewResults(reviews), nil
}

// GetByPlace retrieves all reviews for a listing. The listing must exist.
func (s *ReviewService) GetByPlace(ctx context.Context, placeID uuid.UUID) ([]*ReviewResult, error) {
	if _, err := s.listingRepo.FindByID(ctx, placeID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByPlaceID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	return toReviewResults(reviews), nil
}

// GetByUser retrieves all reviews written by an account
func (s *ReviewService) GetByUser(ctx context.Context, userID uuid.UUID) ([]*ReviewResult, error) {
	reviews, err := s.reviewRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toReviewResults(reviews), nil
}

// Update changes a review's text and rating. The author and admins may
// update; authorship and listing are immutable, so the self-review and
// one-per-pair rules need no re-check here.
func (s *ReviewService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateReviewInput) (*ReviewResult, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModifyReview(actor, review.UserID) {
		return nil, shared.ErrForbidden
	}

	if input.Text != nil {
		if err := review.SetText(*input.Text); err != nil {
			return nil, err
		}
	}
	if input.Rating != nil {
		if err := review.SetRating(*input.Rating); err != nil {
			return nil, err
		}
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		s.logger.Error("Failed to update review", zap.Error(err))
		return nil, err
	}

	return ToReviewResult(review), nil
}

// Delete removes a review. The author and admins may delete.
func (s *ReviewService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanModifyReview(actor, review.UserID) {
		return shared.ErrForbidden
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete review", zap.Error(err))
		return err
	}

	s.logger.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func toReviewResults(reviews []*rental.Review) []*ReviewResult {
	results := make([]*ReviewResult, len(reviews))
	for i, review := range reviews {
		results[i] = ToReviewResult(review)
	}
	return results
}
