package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should trim and keep values", func(t *testing.T) {
		item, err := order.NewItem("  Milk 1L ", 2, " lactose free ")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Milk 1L", item.ProductName())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "lactose free", item.Note())
	})

	t.Run("should require product name", func(t *testing.T) {
		_, err := order.NewItem("   ", 1, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject quantity out of range", func(t *testing.T) {
		_, err := order.NewItem("Bread", 0, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewItem("Bread", order.MaxItemQuantity+1, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join both errors", func(t *testing.T) {
		_, err := order.NewItem("", -1, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, order.Item{}.Validate(), order.ErrItemIsNotConstructed)
	})
}
