package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKitchenStatus_String(t *testing.T) {
	tests := []struct {
		status   order.KitchenStatus
		expected string
	}{
		{order.KitchenStatusNone, ""},
		{order.KitchenStatusPending, "pending"},
		{order.KitchenStatusPreparing, "preparing"},
		{order.KitchenStatusReady, "ready"},
		{order.KitchenStatus(42), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.String())
	}
}

func TestKitchenStatusFromString(t *testing.T) {
	t.Run("parses valid values", func(t *testing.T) {
		tests := map[string]order.KitchenStatus{
			"":          order.KitchenStatusNone,
			"pending":   order.KitchenStatusPending,
			"preparing": order.KitchenStatusPreparing,
			"ready":     order.KitchenStatusReady,
		}

		for input, expected := range tests {
			parsed, err := order.KitchenStatusFromString(input)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, input := range []string{"cooking", "PENDING", "done"} {
			_, err := order.KitchenStatusFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

// Every (from, target) pair is exercised; only the two forward single steps are
// legal. Skipping pending -> ready must fail and leave callers' state untouched.
func TestKitchenStatus_Advance(t *testing.T) {
	all := []order.KitchenStatus{
		order.KitchenStatusNone,
		order.KitchenStatusPending,
		order.KitchenStatusPreparing,
		order.KitchenStatusReady,
	}

	legal := map[order.KitchenStatus]order.KitchenStatus{
		order.KitchenStatusPending:   order.KitchenStatusPreparing,
		order.KitchenStatusPreparing: order.KitchenStatusReady,
	}

	for _, from := range all {
		for _, target := range all {
			next, err := from.Advance(target)

			if expected, ok := legal[from]; ok && target == expected {
				require.NoError(t, err)
				assert.Equal(t, target, next)
				continue
			}

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	}
}

func TestKitchenStatus_Validate(t *testing.T) {
	for _, status := range []order.KitchenStatus{
		order.KitchenStatusNone,
		order.KitchenStatusPending,
		order.KitchenStatusPreparing,
		order.KitchenStatusReady,
	} {
		require.NoError(t, status.Validate())
	}

	require.Error(t, order.KitchenStatus(42).Validate())
}
