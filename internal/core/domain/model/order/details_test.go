package order_test

import (
	"testing"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetails(t *testing.T) {
	t.Run("should create valid details with all fields", func(t *testing.T) {
		details, err := order.NewDetails("ring", "floral band", "22K", "engrave initials", 2)

		require.NoError(t, err)
		require.NoError(t, details.Validate())
		assert.Equal(t, "ring", details.Product())
		assert.Equal(t, "floral band", details.Design())
		assert.Equal(t, "22K", details.Purity())
		assert.Equal(t, "engrave initials", details.Narration())
		assert.Equal(t, 2, details.Quantity())
	})

	t.Run("should allow empty optional fields", func(t *testing.T) {
		details, err := order.NewDetails("necklace", "", "", "", 1)

		require.NoError(t, err)
		assert.Empty(t, details.Design())
		assert.Empty(t, details.Purity())
		assert.Empty(t, details.Narration())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		details, err := order.NewDetails("  bangle  ", " classic ", " 916 ", "  rush job  ", 4)

		require.NoError(t, err)
		assert.Equal(t, "bangle", details.Product())
		assert.Equal(t, "classic", details.Design())
		assert.Equal(t, "916", details.Purity())
		assert.Equal(t, "rush job", details.Narration())
	})

	t.Run("should fail with empty product", func(t *testing.T) {
		_, err := order.NewDetails("", "", "", "", 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "product")
	})

	t.Run("should fail with whitespace-only product", func(t *testing.T) {
		_, err := order.NewDetails("   ", "", "", "", 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewDetails("ring", "", "", "", 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewDetails("ring", "", "", "", -3)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-3 is not greater than 0")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewDetails("", "", "", "", -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product")
		assert.Contains(t, err.Error(), "quantity is invalid")
	})
}

func TestDetails_Validate(t *testing.T) {
	t.Run("should pass for constructed details", func(t *testing.T) {
		details, err := order.NewDetails("ring", "", "", "", 1)

		require.NoError(t, err)
		require.NoError(t, details.Validate())
	})

	t.Run("should fail for zero value details", func(t *testing.T) {
		var details order.Details

		err := details.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrDetailsAreNotConstructed, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDetails_IsEqual(t *testing.T) {
	t.Run("should return true for identical details", func(t *testing.T) {
		d1, err := order.NewDetails("ring", "floral", "22K", "", 2)
		require.NoError(t, err)
		d2, err := order.NewDetails("ring", "floral", "22K", "", 2)
		require.NoError(t, err)

		equal, err := d1.IsEqual(d2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should return false when any field differs", func(t *testing.T) {
		base, err := order.NewDetails("ring", "floral", "22K", "", 2)
		require.NoError(t, err)

		variants := []order.Details{
			mustNewDetails(t, "bangle", "floral", "22K", "", 2),
			mustNewDetails(t, "ring", "plain", "22K", "", 2),
			mustNewDetails(t, "ring", "floral", "916", "", 2),
			mustNewDetails(t, "ring", "floral", "22K", "gift wrap", 2),
			mustNewDetails(t, "ring", "floral", "22K", "", 3),
		}

		for _, other := range variants {
			equal, equalErr := base.IsEqual(other)
			require.NoError(t, equalErr)
			assert.False(t, equal)
		}
	})

	t.Run("should fail when comparing with zero value details", func(t *testing.T) {
		d1, err := order.NewDetails("ring", "", "", "", 1)
		require.NoError(t, err)
		var d2 order.Details

		_, err = d1.IsEqual(d2)

		require.Error(t, err)
		assert.Equal(t, order.ErrDetailsAreNotConstructed, err)
	})
}

func mustNewDetails(t *testing.T, product, design, purity, narration string, quantity int) order.Details {
	t.Helper()

	details, err := order.NewDetails(product, design, purity, narration, quantity)
	require.NoError(t, err)
	return details
}
