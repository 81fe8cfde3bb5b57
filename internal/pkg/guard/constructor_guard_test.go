package guard_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("window must be created via NewDeliveryWindow")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errSlotNotConstructed := errors.New("slot request must be created via newSlotRequest")

	type slotRequest struct {
		slot  string
		guard guard.ConstructorGuard
	}

	newSlotRequest := func(slot string) (slotRequest, error) {
		if slot == "" {
			return slotRequest{}, errors.New("slot is required")
		}
		return slotRequest{slot: slot, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		req, err := newSlotRequest("morning")

		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errSlotNotConstructed))
		assert.Equal(t, "morning", req.slot)
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		req, err := newSlotRequest("")

		require.Error(t, err)
		assert.Equal(t, errSlotNotConstructed, req.guard.Validate(errSlotNotConstructed))
	})

	t.Run("copies_keep_constructed_state", func(t *testing.T) {
		req, err := newSlotRequest("evening")
		require.NoError(t, err)

		cp := req

		require.NoError(t, cp.guard.Validate(errSlotNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
