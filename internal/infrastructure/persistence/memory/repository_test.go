package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/domain/rental"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T, email string) *identity.Account {
	t.Helper()
	account, err := identity.NewAccount("Jane", "Doe", email, "secret", false)
	require.NoError(t, err)
	return account
}

func newTestListing(t *testing.T, ownerID uuid.UUID) *rental.Listing {
	t.Helper()
	listing, err := rental.NewListing("Cozy loft", "", decimal.NewFromInt(50), nil, nil, ownerID)
	require.NoError(t, err)
	return listing
}

func newTestReview(t *testing.T, placeID, userID uuid.UUID) *rental.Review {
	t.Helper()
	review, err := rental.NewReview("Great stay", 5, placeID, userID)
	require.NoError(t, err)
	return review
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		repo := NewAccountRepository()
		account := newTestAccount(t, "jane@example.com")

		require.NoError(t, repo.Create(ctx, account))

		found, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.Email, found.Email)

		found, err = repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, account.ID, found.ID)
	})

	t.Run("create rejects duplicate id", func(t *testing.T) {
		repo := NewAccountRepository()
		account := newTestAccount(t, "jane@example.com")

		require.NoError(t, repo.Create(ctx, account))
		assert.ErrorIs(t, repo.Create(ctx, account), shared.ErrAlreadyExists)
	})

	t.Run("email lookup is case-sensitive", func(t *testing.T) {
		repo := NewAccountRepository()
		require.NoError(t, repo.Create(ctx, newTestAccount(t, "jane@example.com")))

		_, err := repo.FindByEmail(ctx, "Jane@Example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "JANE@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("reads return copies", func(t *testing.T) {
		repo := NewAccountRepository()
		account := newTestAccount(t, "jane@example.com")
		require.NoError(t, repo.Create(ctx, account))

		found, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		found.FirstName = "Mutated"

		again, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", again.FirstName)
	})

	t.Run("update replaces stored state", func(t *testing.T) {
		repo := NewAccountRepository()
		account := newTestAccount(t, "jane@example.com")
		require.NoError(t, repo.Create(ctx, account))

		require.NoError(t, account.SetFirstName("Janet"))
		require.NoError(t, repo.Update(ctx, account))

		found, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "Janet", found.FirstName)
	})

	t.Run("update and delete of absent account fail", func(t *testing.T) {
		repo := NewAccountRepository()
		account := newTestAccount(t, "jane@example.com")

		assert.ErrorIs(t, repo.Update(ctx, account), shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, account.ID), shared.ErrNotFound)
	})

	t.Run("find all preserves insertion order", func(t *testing.T) {
		repo := NewAccountRepository()
		first := newTestAccount(t, "a@example.com")
		second := newTestAccount(t, "b@example.com")
		third := newTestAccount(t, "c@example.com")
		for _, a := range []*identity.Account{first, second, third} {
			require.NoError(t, repo.Create(ctx, a))
		}
		require.NoError(t, repo.Delete(ctx, second.ID))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, third.ID, all[1].ID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestListingRepositoryCascade(t *testing.T) {
	ctx := context.Background()

	listings := NewListingRepository()
	reviews := NewReviewRepository()
	listings.SetReviewRepository(reviews)

	ownerID := uuid.New()
	listing := newTestListing(t, ownerID)
	other := newTestListing(t, ownerID)
	require.NoError(t, listings.Create(ctx, listing))
	require.NoError(t, listings.Create(ctx, other))

	require.NoError(t, reviews.Create(ctx, newTestReview(t, listing.ID, uuid.New())))
	require.NoError(t, reviews.Create(ctx, newTestReview(t, listing.ID, uuid.New())))
	kept := newTestReview(t, other.ID, uuid.New())
	require.NoError(t, reviews.Create(ctx, kept))

	require.NoError(t, listings.Delete(ctx, listing.ID))

	_, err := listings.FindByID(ctx, listing.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	orphans, err := reviews.FindByPlaceID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	remaining, err := reviews.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}

func TestListingRepositoryAmenityIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewListingRepository()

	listing := newTestListing(t, uuid.New())
	amenityID := uuid.New()
	listing.AddAmenity(amenityID)
	require.NoError(t, repo.Create(ctx, listing))

	found, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	found.AmenityIDs[0] = uuid.New()

	again, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{amenityID}, again.AmenityIDs)
}

func TestListingRepositoryFindByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewListingRepository()

	owner := uuid.New()
	mine := newTestListing(t, owner)
	theirs := newTestListing(t, uuid.New())
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))

	owned, err := repo.FindByOwnerID(ctx, owner)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, mine.ID, owned[0].ID)
}

func TestAmenityRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("find by name is exact", func(t *testing.T) {
		repo := NewAmenityRepository()
		amenity, err := rental.NewAmenity("WiFi", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, amenity))

		found, err := repo.FindByName(ctx, "WiFi")
		require.NoError(t, err)
		assert.Equal(t, amenity.ID, found.ID)

		_, err = repo.FindByName(ctx, "wifi")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete detaches amenity from listings", func(t *testing.T) {
		amenities := NewAmenityRepository()
		listings := NewListingRepository()
		amenities.SetListingRepository(listings)

		amenity, err := rental.NewAmenity("Pool", "")
		require.NoError(t, err)
		require.NoError(t, amenities.Create(ctx, amenity))

		listing := newTestListing(t, uuid.New())
		listing.AddAmenity(amenity.ID)
		require.NoError(t, listings.Create(ctx, listing))

		require.NoError(t, amenities.Delete(ctx, amenity.ID))

		found, err := listings.FindByID(ctx, listing.ID)
		require.NoError(t, err)
		assert.Empty(t, found.AmenityIDs)
	})
}

func TestReviewRepositoryFinders(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository()

	placeID := uuid.New()
	userID := uuid.New()
	review := newTestReview(t, placeID, userID)
	require.NoError(t, repo.Create(ctx, review))
	require.NoError(t, repo.Create(ctx, newTestReview(t, placeID, uuid.New())))
	require.NoError(t, repo.Create(ctx, newTestReview(t, uuid.New(), userID)))

	byPlace, err := repo.FindByPlaceID(ctx, placeID)
	require.NoError(t, err)
	assert.Len(t, byPlace, 2)

	byUser, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	found, err := repo.FindByUserAndPlace(ctx, userID, placeID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, found.ID)

	_, err = repo.FindByUserAndPlace(ctx, uuid.New(), placeID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
