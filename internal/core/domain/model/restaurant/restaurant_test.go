package restaurant_test

import (
	"strings"
	"testing"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/restaurant"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	id := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	t.Run("should create restaurant with trimmed fields", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(id, ownerID, "  Noodle Bar ", " 1 Main St ")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.OwnerID().IsEqual(ownerID))
		assert.Equal(t, "Noodle Bar", r.Name())
		assert.Equal(t, "1 Main St", r.Address())
		assert.True(t, r.IsOwnedBy(ownerID))
		assert.False(t, r.IsOwnedBy(kernel.NewUUID()))
	})

	t.Run("address is optional", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(id, ownerID, "Noodle Bar", "")

		require.NoError(t, err)
		assert.Empty(t, r.Address())
	})

	t.Run("should fail without name", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(id, ownerID, "   ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, r)
	})

	t.Run("should fail with too long name", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(id, ownerID, strings.Repeat("a", 101), "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.UUID{}, kernel.UUID{}, "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "ownerID")
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var r restaurant.Restaurant
		require.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}
