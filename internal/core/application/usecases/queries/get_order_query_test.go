package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("creates valid query", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(id)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(id))
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOrderQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetPendingOrdersQuery(t *testing.T) {
	require.NoError(t, queries.NewGetPendingOrdersQuery().Validate())

	var query queries.GetPendingOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetPendingOrdersQueryIsNotConstructed)
}

func TestNewGetActiveOrdersQuery(t *testing.T) {
	require.NoError(t, queries.NewGetActiveOrdersQuery().Validate())

	var query queries.GetActiveOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
}
