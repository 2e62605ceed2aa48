package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.OrderRepository = (*MockOrderRepository)(nil)
	_ commands.OrderUoW     = (*MockOrderUoW)(nil)
	_ ports.MenuProvider    = (*MockMenuProvider)(nil)
	_ ports.SessionStore    = (*MockSessionStore)(nil)
	_ commands.Notifier     = (*MockNotifier)(nil)
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuProvider struct{ mock.Mock }

func (m *MockMenuProvider) GetByID(ctx context.Context, id kernel.UUID) (ports.MenuItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.MenuItem), args.Error(1)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Touch(ctx context.Context, sessionID string, now time.Time) error {
	args := m.Called(ctx, sessionID, now)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteExpired(ctx context.Context, ttl time.Duration, now time.Time) (int, error) {
	args := m.Called(ctx, ttl, now)
	return args.Int(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderCreated(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

func (m *MockNotifier) NotifyOrderStatusChanged(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

// storedOrder builds an order in the given lifecycle status, walking the
// transitions an order actually takes to get there.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(1500)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", price, 1, "")
	require.NoError(t, err)
	table, err := kernel.NewTableNumber(5, 50)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateOrderNumber(time.Now()),
		table,
		"session-42",
		order.PaymentMethodCash,
		[]order.Item{item},
		time.Now(),
	)
	require.NoError(t, err)

	steps := []func() error{
		func() error { return o.Approve(15*time.Minute, time.Now()) },
		func() error { return o.AdvanceKitchen(order.KitchenStatusPreparing) },
		func() error { return o.AdvanceKitchen(order.KitchenStatusReady) },
		func() error { return o.Complete(time.Now()) },
	}

	for _, step := range steps {
		if o.Status() == status {
			break
		}
		require.NoError(t, step())
	}

	require.Equal(t, status, o.Status())
	return o
}
