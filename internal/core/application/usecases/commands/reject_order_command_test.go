package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectOrderCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewRejectOrderCommand(id, "out of stock")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "out of stock", cmd.Reason())
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		_, err := commands.NewRejectOrderCommand(kernel.UUID{}, "out of stock")
		require.Error(t, err)
	})

	t.Run("rejects blank reason", func(t *testing.T) {
		_, err := commands.NewRejectOrderCommand(kernel.NewUUID(), "   ")
		require.ErrorIs(t, err, commands.ErrRejectReasonIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.RejectOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRejectOrderCommandIsNotConstructed)
	})
}
