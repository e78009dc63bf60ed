package rental

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stayhub/backend/internal/domain/authz"
	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixture wires the rental services against in-memory repositories the same
// way cmd/server wires them against GORM.
type fixture struct {
	listings  *ListingService
	amenities *AmenityService
	reviews   *ReviewService

	accountRepo *memory.AccountRepository
	listingRepo *memory.ListingRepository
	amenityRepo *memory.AmenityRepository
	reviewRepo  *memory.ReviewRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	accountRepo := memory.NewAccountRepository()
	listingRepo := memory.NewListingRepository()
	amenityRepo := memory.NewAmenityRepository()
	reviewRepo := memory.NewReviewRepository()
	listingRepo.SetReviewRepository(reviewRepo)
	amenityRepo.SetListingRepository(listingRepo)

	log := zap.NewNop()
	return &fixture{
		listings:    NewListingService(listingRepo, amenityRepo, accountRepo, log),
		amenities:   NewAmenityService(amenityRepo),
		reviews:     NewReviewService(reviewRepo, listingRepo, accountRepo, log),
		accountRepo: accountRepo,
		listingRepo: listingRepo,
		amenityRepo: amenityRepo,
		reviewRepo:  reviewRepo,
	}
}

// registerActor stores a fresh account and returns it as an actor.
func (f *fixture) registerActor(t *testing.T, email string, admin bool) authz.Actor {
	t.Helper()
	account, err := identity.NewAccount("Test", "User", email, "secret", admin)
	require.NoError(t, err)
	require.NoError(t, f.accountRepo.Create(context.Background(), account))
	return authz.Actor{ID: account.ID, IsAdmin: admin}
}

func (f *fixture) createListing(t *testing.T, owner authz.Actor, title string) *ListingResult {
	t.Helper()
	result, err := f.listings.Create(context.Background(), owner, CreateListingInput{
		Title: title,
		Price: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	return result
}

func (f *fixture) createAmenity(t *testing.T, admin authz.Actor, name string) *AmenityResult {
	t.Helper()
	result, err := f.amenities.Create(context.Background(), admin, CreateAmenityInput{Name: name})
	require.NoError(t, err)
	return result
}

func strPtr(s string) *string                       { return &s }
func intPtr(i int) *int                             { return &i }
func float64Ptr(f float64) *float64                 { return &f }
func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}
