package rental

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stayhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmenityServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates an amenity", func(t *testing.T) {
		f := newFixture(t)
		admin := f.registerActor(t, "admin@example.com", true)

		result, err := f.amenities.Create(ctx, admin, CreateAmenityInput{
			Name: "WiFi", Description: "Wireless internet",
		})
		require.NoError(t, err)
		assert.Equal(t, "WiFi", result.Name)
		assert.Equal(t, "Wireless internet", result.Description)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		f := newFixture(t)
		user := f.registerActor(t, "user@example.com", false)

		_, err := f.amenities.Create(ctx, user, CreateAmenityInput{Name: "WiFi"})
		assertCode(t, err, shared.CodeForbidden)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		f := newFixture(t)
		admin := f.registerActor(t, "admin@example.com", true)
		f.createAmenity(t, admin, "WiFi")

		_, err := f.amenities.Create(ctx, admin, CreateAmenityInput{Name: "WiFi"})
		assertCode(t, err, shared.CodeAlreadyExists)
	})

	t.Run("names differing in case are distinct", func(t *testing.T) {
		f := newFixture(t)
		admin := f.registerActor(t, "admin@example.com", true)
		f.createAmenity(t, admin, "WiFi")

		_, err := f.amenities.Create(ctx, admin, CreateAmenityInput{Name: "wifi"})
		require.NoError(t, err)
	})
}

func TestAmenityServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("admin renames an amenity", func(t *testing.T) {
		f := newFixture(t)
		admin := f.registerActor(t, "admin@example.com", true)
		amenity := f.createAmenity(t, admin, "WiFi")

		result, err := f.amenities.Update(ctx, admin, amenity.ID, UpdateAmenityInput{
			Name: strPtr("High-speed WiFi"),
		})
		require.NoError(t, err)
		assert.Equal(t, "High-speed WiFi", result.Name)
	})

	t.Run("rename to a taken name is rejected", func(t *testing.T) {
		f := newFixture(t)
		admin := f.registerActor(t, "admin@example.com", true)
		f.createAmenity(t, admin, "Pool")
		amenity := f.createAmenity(t, admin, "WiFi")

		_, err := f.amenities.Update(ctx, admin, amenity.ID, UpdateAmenityInput{Name: strPtr("Pool")})
		assertCode(t, err, shared.CodeAlreadyExists)
	})

	t.Run("keeping the current name skips the uniqueness check", func(t *testing.T) {
		f := newFixture(t)
		admin := f.registerActor(t, "admin@example.com", true)
		amenity := f.createAmenity(t, admin, "WiFi")

		result, err := f.amenities.Update(ctx, admin, amenity.ID, UpdateAmenityInput{
			Name:        strPtr("WiFi"),
			Description: strPtr("Updated description"),
		})
		require.NoError(t, err)
		assert.Equal(t, "WiFi", result.Name)
		assert.Equal(t, "Updated description", result.Description)
	})

	t.Run("non-admin is forbidden before the existence check", func(t *testing.T) {
		f := newFixture(t)
		user := f.registerActor(t, "user@example.com", false)

		_, err := f.amenities.Update(ctx, user, uuid.New(), UpdateAmenityInput{Name: strPtr("WiFi")})
		assertCode(t, err, shared.CodeForbidden)
	})

	t.Run("unknown amenity reports not found", func(t *testing.T) {
		f := newFixture(t)
		admin := f.registerActor(t, "admin@example.com", true)

		_, err := f.amenities.Update(ctx, admin, uuid.New(), UpdateAmenityInput{Name: strPtr("WiFi")})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestAmenityServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin is forbidden", func(t *testing.T) {
		f := newFixture(t)
		admin := f.registerActor(t, "admin@example.com", true)
		user := f.registerActor(t, "user@example.com", false)
		amenity := f.createAmenity(t, admin, "WiFi")

		err := f.amenities.Delete(ctx, user, amenity.ID)
		assertCode(t, err, shared.CodeForbidden)
	})

	t.Run("delete detaches the amenity from listings", func(t *testing.T) {
		f := newFixture(t)
		admin := f.registerActor(t, "admin@example.com", true)
		owner := f.registerActor(t, "owner@example.com", false)
		wifi := f.createAmenity(t, admin, "WiFi")
		listing := f.createListing(t, owner, "Cozy loft")

		_, err := f.listings.AddAmenity(ctx, owner, listing.ID, wifi.ID)
		require.NoError(t, err)

		require.NoError(t, f.amenities.Delete(ctx, admin, wifi.ID))

		_, err = f.amenities.Get(ctx, wifi.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		found, err := f.listings.Get(ctx, listing.ID)
		require.NoError(t, err)
		assert.Empty(t, found.AmenityIDs)
	})
}
