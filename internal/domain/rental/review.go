package rental

import (
	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/shared"
)

// Review is a rating plus text authored by an account about a listing it does
// not own. At most one review may exist per (user, place) pair; both rules
// are enforced by the service before the review is persisted.
type Review struct {
	shared.BaseEntity
	Text    string
	Rating  int
	PlaceID uuid.UUID
	UserID  uuid.UUID
}

// NewReview creates a review of place by user
func NewReview(text string, rating int, placeID, userID uuid.UUID) (*Review, error) {
	if err := validateReviewText(text); err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	if placeID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Place is required")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "User is required")
	}

	return &Review{
		BaseEntity: shared.NewBaseEntity(),
		Text:       text,
		Rating:     rating,
		PlaceID:    placeID,
		UserID:     userID,
	}, nil
}

// SetText updates the review text
func (r *Review) SetText(text string) error {
	if err := validateReviewText(text); err != nil {
		return err
	}
	r.Text = text
	r.Touch()
	return nil
}

// SetRating updates the rating
func (r *Review) SetRating(rating int) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	r.Rating = rating
	r.Touch()
	return nil
}

func validateReviewText(text string) error {
	if text == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Review text cannot be empty")
	}
	return nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Rating must be between 1 and 5")
	}
	return nil
}
