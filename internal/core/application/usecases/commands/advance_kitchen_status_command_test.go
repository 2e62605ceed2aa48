package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceKitchenStatusCommand(t *testing.T) {
	t.Run("accepts preparing target", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewAdvanceKitchenStatusCommand(id, order.KitchenStatusPreparing)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, order.KitchenStatusPreparing, cmd.Target())
	})

	t.Run("accepts ready target", func(t *testing.T) {
		cmd, err := commands.NewAdvanceKitchenStatusCommand(kernel.NewUUID(), order.KitchenStatusReady)

		require.NoError(t, err)
		assert.Equal(t, order.KitchenStatusReady, cmd.Target())
	})

	t.Run("rejects pending target", func(t *testing.T) {
		_, err := commands.NewAdvanceKitchenStatusCommand(kernel.NewUUID(), order.KitchenStatusPending)
		require.ErrorIs(t, err, commands.ErrKitchenTargetIsInvalid)
	})

	t.Run("rejects none target", func(t *testing.T) {
		_, err := commands.NewAdvanceKitchenStatusCommand(kernel.NewUUID(), order.KitchenStatusNone)
		require.ErrorIs(t, err, commands.ErrKitchenTargetIsInvalid)
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		_, err := commands.NewAdvanceKitchenStatusCommand(kernel.UUID{}, order.KitchenStatusPreparing)
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.AdvanceKitchenStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceKitchenStatusCommandIsNotConstructed)
	})
}
