package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/domain/rental"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stayhub/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(&config.DatabaseConfig{
		Driver:          "sqlite",
		Path:            filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 5,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func createTestAccount(t *testing.T, email string) *identity.Account {
	t.Helper()
	account, err := identity.NewAccount("Jane", "Doe", email, "secret", false)
	require.NoError(t, err)
	return account
}

func createTestListing(t *testing.T, ownerID uuid.UUID, amenityIDs ...uuid.UUID) *rental.Listing {
	t.Helper()
	listing, err := rental.NewListing("Cozy loft", "Close to the river", decimal.NewFromInt(80), nil, nil, ownerID)
	require.NoError(t, err)
	for _, id := range amenityIDs {
		listing.AddAmenity(id)
	}
	return listing
}

func createTestAmenity(t *testing.T, repo *GormAmenityRepository, name string) *rental.Amenity {
	t.Helper()
	amenity, err := rental.NewAmenity(name, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), amenity))
	return amenity
}

func TestGormAccountRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormAccountRepository(db.DB)
		account := createTestAccount(t, "jane@example.com")

		require.NoError(t, repo.Create(ctx, account))

		found, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.Email, found.Email)
		assert.True(t, found.VerifyPassword("secret"))
	})

	t.Run("find by email is exact", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormAccountRepository(db.DB)
		require.NoError(t, repo.Create(ctx, createTestAccount(t, "jane@example.com")))

		found, err := repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", found.Email)

		exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing rows map to not found", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormAccountRepository(db.DB)

		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		account := createTestAccount(t, "jane@example.com")
		assert.ErrorIs(t, repo.Update(ctx, account), shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, account.ID), shared.ErrNotFound)
	})

	t.Run("find all in creation order", func(t *testing.T) {
		db := newTestDatabase(t)
		repo := NewGormAccountRepository(db.DB)

		first := createTestAccount(t, "a@example.com")
		second := createTestAccount(t, "b@example.com")
		second.CreatedAt = first.CreatedAt.Add(time.Millisecond)
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestGormListingRepositoryAmenityLinks(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)
	listings := NewGormListingRepository(db.DB)
	amenities := NewGormAmenityRepository(db.DB)

	wifi := createTestAmenity(t, amenities, "WiFi")
	pool := createTestAmenity(t, amenities, "Pool")

	t.Run("links round trip in association order", func(t *testing.T) {
		listing := createTestListing(t, uuid.New(), pool.ID, wifi.ID)
		require.NoError(t, listings.Create(ctx, listing))

		found, err := listings.FindByID(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{pool.ID, wifi.ID}, found.AmenityIDs)
	})

	t.Run("update replaces links", func(t *testing.T) {
		listing := createTestListing(t, uuid.New(), wifi.ID)
		require.NoError(t, listings.Create(ctx, listing))

		listing.RemoveAmenity(wifi.ID)
		listing.AddAmenity(pool.ID)
		require.NoError(t, listings.Update(ctx, listing))

		found, err := listings.FindByID(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{pool.ID}, found.AmenityIDs)
	})

	t.Run("amenity delete removes links", func(t *testing.T) {
		sauna := createTestAmenity(t, amenities, "Sauna")
		listing := createTestListing(t, uuid.New(), sauna.ID)
		require.NoError(t, listings.Create(ctx, listing))

		require.NoError(t, amenities.Delete(ctx, sauna.ID))

		_, err := amenities.FindByID(ctx, sauna.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		found, err := listings.FindByID(ctx, listing.ID)
		require.NoError(t, err)
		assert.Empty(t, found.AmenityIDs)
	})
}

func TestGormListingRepositoryCascade(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)
	listings := NewGormListingRepository(db.DB)
	reviews := NewGormReviewRepository(db.DB)

	listing := createTestListing(t, uuid.New())
	other := createTestListing(t, uuid.New())
	require.NoError(t, listings.Create(ctx, listing))
	require.NoError(t, listings.Create(ctx, other))

	doomed, err := rental.NewReview("Great stay", 5, listing.ID, uuid.New())
	require.NoError(t, err)
	kept, err := rental.NewReview("Also fine", 4, other.ID, uuid.New())
	require.NoError(t, err)
	require.NoError(t, reviews.Create(ctx, doomed))
	require.NoError(t, reviews.Create(ctx, kept))

	require.NoError(t, listings.Delete(ctx, listing.ID))

	_, err = listings.FindByID(ctx, listing.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	orphans, err := reviews.FindByPlaceID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	remaining, err := reviews.FindByPlaceID(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}

func TestGormListingRepositoryFindByOwner(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)
	listings := NewGormListingRepository(db.DB)

	owner := uuid.New()
	mine := createTestListing(t, owner)
	require.NoError(t, listings.Create(ctx, mine))
	require.NoError(t, listings.Create(ctx, createTestListing(t, uuid.New())))

	owned, err := listings.FindByOwnerID(ctx, owner)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, mine.ID, owned[0].ID)
}

func TestGormReviewRepositoryFinders(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := NewGormReviewRepository(db.DB)

	placeID := uuid.New()
	userID := uuid.New()
	review, err := rental.NewReview("Great stay", 5, placeID, userID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, review))

	found, err := repo.FindByUserAndPlace(ctx, userID, placeID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, found.ID)

	_, err = repo.FindByUserAndPlace(ctx, uuid.New(), placeID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	byUser, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)
}

func TestGormAmenityRepositoryNames(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := NewGormAmenityRepository(db.DB)

	createTestAmenity(t, repo, "WiFi")

	found, err := repo.FindByName(ctx, "WiFi")
	require.NoError(t, err)
	assert.Equal(t, "WiFi", found.Name)

	exists, err := repo.ExistsByName(ctx, "WiFi")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Pool")
	require.NoError(t, err)
	assert.False(t, exists)
}
