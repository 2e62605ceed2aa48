package services_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, sessionID string) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(1200)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Carbonara", price, 1, "")
	require.NoError(t, err)
	table, err := kernel.NewTableNumber(4, 50)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateOrderNumber(time.Now()),
		table,
		sessionID,
		order.PaymentMethodCash,
		[]order.Item{item},
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNotificationRouter_Route(t *testing.T) {
	router := services.NewNotificationRouter()

	t.Run("new order goes to managers only", func(t *testing.T) {
		o := buildOrder(t, "session-7")

		audiences, err := router.Route(services.EventKindNewOrder, o)

		require.NoError(t, err)
		assert.Equal(t, []services.Audience{services.AudienceManager}, audiences)
	})

	t.Run("status update fans out to managers, kitchen and session", func(t *testing.T) {
		o := buildOrder(t, "session-7")

		audiences, err := router.Route(services.EventKindStatusUpdate, o)

		require.NoError(t, err)
		assert.Equal(t, []services.Audience{
			services.AudienceManager,
			services.AudienceKitchen,
			services.Audience("customer.session-7"),
		}, audiences)
	})

	t.Run("customer audience is scoped to the originating session", func(t *testing.T) {
		first := buildOrder(t, "session-a")
		second := buildOrder(t, "session-b")

		firstAudiences, err := router.Route(services.EventKindStatusUpdate, first)
		require.NoError(t, err)
		secondAudiences, err := router.Route(services.EventKindStatusUpdate, second)
		require.NoError(t, err)

		assert.Contains(t, firstAudiences, services.Audience("customer.session-a"))
		assert.NotContains(t, firstAudiences, services.Audience("customer.session-b"))
		assert.Contains(t, secondAudiences, services.Audience("customer.session-b"))
	})

	t.Run("rejects unknown event kind", func(t *testing.T) {
		o := buildOrder(t, "session-7")

		_, err := router.Route(services.EventKind("order-deleted"), o)

		require.ErrorIs(t, err, services.ErrUnknownEventKind)
	})

	t.Run("rejects unconstructed order", func(t *testing.T) {
		_, err := router.Route(services.EventKindNewOrder, &order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestCustomerAudience(t *testing.T) {
	assert.Equal(t, services.Audience("customer.abc"), services.CustomerAudience("abc"))
}
