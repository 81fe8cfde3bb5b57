package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryWindow(t *testing.T) {
	t.Run("should build a window from wire values", func(t *testing.T) {
		w, err := kernel.ParseDeliveryWindow("2024-06-01", "afternoon")

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, "2024-06-01", w.Date().String())
		assert.Equal(t, kernel.Afternoon, w.Slot())
		assert.Equal(t, "2024-06-01 (afternoon)", w.String())
	})

	t.Run("should report both invalid parts", func(t *testing.T) {
		_, err := kernel.ParseDeliveryWindow("2024-02-30", "night")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery date")
		assert.Contains(t, err.Error(), "time slot")
	})
}

func TestNewDeliveryWindow(t *testing.T) {
	date, _ := kernel.ParseDeliveryDate("2024-06-03")

	t.Run("should reject zero date", func(t *testing.T) {
		_, err := kernel.NewDeliveryWindow(kernel.DeliveryDate{}, kernel.Evening)

		require.ErrorIs(t, err, kernel.ErrDeliveryDateIsNotConstructed)
	})

	t.Run("should reject unknown slot", func(t *testing.T) {
		_, err := kernel.NewDeliveryWindow(date, kernel.UnknownTimeSlot)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("equality compares date and slot", func(t *testing.T) {
		a, _ := kernel.NewDeliveryWindow(date, kernel.Evening)
		b, _ := kernel.ParseDeliveryWindow("2024-06-03", "evening")
		c, _ := kernel.ParseDeliveryWindow("2024-06-03", "morning")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestDeliveryWindow_ZeroValue(t *testing.T) {
	var w kernel.DeliveryWindow

	assert.Equal(t, kernel.ErrDeliveryWindowIsNotConstructed, w.Validate())
}
