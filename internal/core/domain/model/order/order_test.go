package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxTables = 50

func buildItems(t *testing.T) []order.Item {
	t.Helper()

	pizza, err := order.NewItem(kernel.NewUUID(), "Margherita", mustMoney(t, 1000), 2, "")
	require.NoError(t, err)
	lemonade, err := order.NewItem(kernel.NewUUID(), "Lemonade", mustMoney(t, 500), 1, "no ice")
	require.NoError(t, err)

	return []order.Item{pizza, lemonade}
}

func buildOrder(t *testing.T) *order.Order {
	t.Helper()

	table, err := kernel.NewTableNumber(7, maxTables)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateOrderNumber(time.Now()),
		table,
		"session-42",
		order.PaymentMethodCard,
		buildItems(t),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order pending approval", func(t *testing.T) {
		o := buildOrder(t)

		assert.Equal(t, order.StatusPendingApproval, o.Status())
		assert.Equal(t, order.KitchenStatusNone, o.KitchenStatus())
		assert.Nil(t, o.ExpectedCompletionAt())
		assert.Nil(t, o.CompletedAt())
		assert.Empty(t, o.CancelReason())
		assert.Len(t, o.Items(), 2)
		assert.NoError(t, o.Validate())
	})

	t.Run("computes total from item snapshots", func(t *testing.T) {
		// 2 x 10.00 + 1 x 5.00 = 25.00
		o := buildOrder(t)
		assert.Equal(t, int64(2500), o.TotalAmount().Cents())
	})

	t.Run("items keep insertion order", func(t *testing.T) {
		o := buildOrder(t)
		items := o.Items()
		assert.Equal(t, "Margherita", items[0].Name())
		assert.Equal(t, "Lemonade", items[1].Name())
	})

	t.Run("returned items are a copy", func(t *testing.T) {
		o := buildOrder(t)
		items := o.Items()
		items[0] = order.Item{}
		assert.Equal(t, "Margherita", o.Items()[0].Name())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		table, _ := kernel.NewTableNumber(7, maxTables)
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.GenerateOrderNumber(time.Now()),
			table,
			"session-42",
			order.PaymentMethodCash,
			nil,
			time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects blank session", func(t *testing.T) {
		table, _ := kernel.NewTableNumber(7, maxTables)
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.GenerateOrderNumber(time.Now()),
			table,
			"  ",
			order.PaymentMethodCash,
			buildItems(t),
			time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed table", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.GenerateOrderNumber(time.Now()),
			kernel.TableNumber{},
			"session-42",
			order.PaymentMethodCash,
			buildItems(t),
			time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Approve(t *testing.T) {
	t.Run("sets estimate and enters kitchen queue", func(t *testing.T) {
		o := buildOrder(t)
		now := time.Now()

		err := o.Approve(20*time.Minute, now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusApproved, o.Status())
		assert.Equal(t, order.KitchenStatusPending, o.KitchenStatus())
		require.NotNil(t, o.ExpectedCompletionAt())
		assert.WithinDuration(t, now.Add(20*time.Minute), *o.ExpectedCompletionAt(), time.Second)

		for _, item := range o.Items() {
			assert.Equal(t, order.KitchenStatusPending, item.Status())
		}
	})

	t.Run("rejects non-positive estimate", func(t *testing.T) {
		o := buildOrder(t)
		require.Error(t, o.Approve(0, time.Now()))
		require.Error(t, o.Approve(-time.Minute, time.Now()))
		assert.Equal(t, order.StatusPendingApproval, o.Status())
	})

	t.Run("cannot approve twice", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))

		err := o.Approve(20*time.Minute, time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("cancels pending order with reason", func(t *testing.T) {
		o := buildOrder(t)

		err := o.Reject("out of ingredients")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "out of ingredients", o.CancelReason())
	})

	t.Run("requires a reason", func(t *testing.T) {
		o := buildOrder(t)
		require.ErrorIs(t, o.Reject(" "), errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusPendingApproval, o.Status())
	})

	t.Run("cannot reject an approved order", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))

		err := o.Reject("changed my mind")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusApproved, o.Status())
	})
}

func TestOrder_AdvanceKitchen(t *testing.T) {
	t.Run("preparing moves order in progress", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))

		err := o.AdvanceKitchen(order.KitchenStatusPreparing)

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, order.KitchenStatusPreparing, o.KitchenStatus())

		for _, item := range o.Items() {
			assert.Equal(t, order.KitchenStatusPreparing, item.Status())
		}
	})

	t.Run("ready moves order to ready", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))
		require.NoError(t, o.AdvanceKitchen(order.KitchenStatusPreparing))

		err := o.AdvanceKitchen(order.KitchenStatusReady)

		require.NoError(t, err)
		assert.Equal(t, order.StatusReady, o.Status())
		assert.Equal(t, order.KitchenStatusReady, o.KitchenStatus())
	})

	t.Run("skipping preparing fails and leaves state unchanged", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))

		err := o.AdvanceKitchen(order.KitchenStatusReady)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusApproved, o.Status())
		assert.Equal(t, order.KitchenStatusPending, o.KitchenStatus())
	})

	t.Run("cannot advance before approval", func(t *testing.T) {
		o := buildOrder(t)

		err := o.AdvanceKitchen(order.KitchenStatusPreparing)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusPendingApproval, o.Status())
	})

	t.Run("cannot move backward", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))
		require.NoError(t, o.AdvanceKitchen(order.KitchenStatusPreparing))

		err := o.AdvanceKitchen(order.KitchenStatusPending)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusInProgress, o.Status())
	})

	t.Run("cannot advance after ready", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))
		require.NoError(t, o.AdvanceKitchen(order.KitchenStatusPreparing))
		require.NoError(t, o.AdvanceKitchen(order.KitchenStatusReady))

		err := o.AdvanceKitchen(order.KitchenStatusReady)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("completes a ready order", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))
		require.NoError(t, o.AdvanceKitchen(order.KitchenStatusPreparing))
		require.NoError(t, o.AdvanceKitchen(order.KitchenStatusReady))

		now := time.Now()
		err := o.Complete(now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.WithinDuration(t, now, *o.CompletedAt(), time.Second)
	})

	t.Run("cannot complete before ready", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))

		err := o.Complete(time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.CompletedAt())
	})
}

func TestOrder_ForceCancel(t *testing.T) {
	t.Run("cancels an in-progress order", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))
		require.NoError(t, o.AdvanceKitchen(order.KitchenStatusPreparing))

		err := o.ForceCancel("kitchen fire drill")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "kitchen fire drill", o.CancelReason())
	})

	t.Run("cannot cancel a completed order", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.Approve(20*time.Minute, time.Now()))
		require.NoError(t, o.AdvanceKitchen(order.KitchenStatusPreparing))
		require.NoError(t, o.AdvanceKitchen(order.KitchenStatusReady))
		require.NoError(t, o.Complete(time.Now()))

		err := o.ForceCancel("too late")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusCompleted, o.Status())
	})
}

func TestOrder_FullLifecycle(t *testing.T) {
	// Walks the happy path end to end and records every observed status. The
	// observed sequence must follow the lifecycle graph with no skipped or
	// reversed edges.
	o := buildOrder(t)
	observed := []order.Status{o.Status()}

	require.NoError(t, o.Approve(20*time.Minute, time.Now()))
	observed = append(observed, o.Status())

	require.NoError(t, o.AdvanceKitchen(order.KitchenStatusPreparing))
	observed = append(observed, o.Status())

	require.NoError(t, o.AdvanceKitchen(order.KitchenStatusReady))
	observed = append(observed, o.Status())

	require.NoError(t, o.Complete(time.Now()))
	observed = append(observed, o.Status())

	assert.Equal(t, []order.Status{
		order.StatusPendingApproval,
		order.StatusApproved,
		order.StatusInProgress,
		order.StatusReady,
		order.StatusCompleted,
	}, observed)

	// The total never moved while the lifecycle ran.
	assert.Equal(t, int64(2500), o.TotalAmount().Cents())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores persisted state verbatim", func(t *testing.T) {
		id := kernel.NewUUID()
		number := kernel.GenerateOrderNumber(time.Now())
		table, _ := kernel.NewTableNumber(3, maxTables)
		createdAt := time.Now().Add(-time.Hour).UTC()
		expectedAt := createdAt.Add(30 * time.Minute)

		// Persisted total deliberately differs from the sum of current item
		// prices: restore must never recompute the creation-time snapshot.
		total := mustMoney(t, 9999)

		o, err := order.RestoreOrder(
			id,
			number,
			order.StatusInProgress,
			order.KitchenStatusPreparing,
			table,
			"session-42",
			order.PaymentMethodCash,
			buildItems(t),
			total,
			"",
			createdAt,
			&expectedAt,
			nil,
		)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, order.KitchenStatusPreparing, o.KitchenStatus())
		assert.Equal(t, int64(9999), o.TotalAmount().Cents())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NotNil(t, o.ExpectedCompletionAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		table, _ := kernel.NewTableNumber(3, maxTables)
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			kernel.GenerateOrderNumber(time.Now()),
			order.StatusUnknown,
			order.KitchenStatusNone,
			table,
			"session-42",
			order.PaymentMethodCash,
			buildItems(t),
			mustMoney(t, 2500),
			"",
			time.Now(),
			nil,
			nil,
		)
		require.Error(t, err)
	})
}

func TestOrder_Age(t *testing.T) {
	o := buildOrder(t)
	age := o.Age(time.Now().Add(42 * time.Minute))
	assert.InDelta(t, (42 * time.Minute).Seconds(), age.Seconds(), 5)
}
