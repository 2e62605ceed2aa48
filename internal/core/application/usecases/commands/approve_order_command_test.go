package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApproveOrderCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewApproveOrderCommand(id, 20)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, 20, cmd.EstimatedMinutes())
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		_, err := commands.NewApproveOrderCommand(kernel.UUID{}, 20)
		require.Error(t, err)
	})

	t.Run("rejects non-positive estimate", func(t *testing.T) {
		_, err := commands.NewApproveOrderCommand(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, commands.ErrEstimatedMinutesIsInvalid)

		_, err = commands.NewApproveOrderCommand(kernel.NewUUID(), -5)
		require.ErrorIs(t, err, commands.ErrEstimatedMinutesIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.ApproveOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrApproveOrderCommandIsNotConstructed)
	})
}
