package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.StatusPendingApproval)
	cmd, err := commands.NewApproveOrderCommand(stored.ID(), 20)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored, order.StatusPendingApproval).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyOrderStatusChanged", mock.Anything, stored).Once()

	h := commands.NewApproveOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusApproved, stored.Status())
	assert.Equal(t, order.KitchenStatusPending, stored.KitchenStatus())
	require.NotNil(t, stored.ExpectedCompletionAt())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.StatusPendingApproval)
	cmd, err := commands.NewApproveOrderCommand(stored.ID(), 20)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", stored.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestApproveOrderCommandHandler_Handle_AlreadyApproved(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.StatusApproved)
	cmd, err := commands.NewApproveOrderCommand(stored.ID(), 20)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewApproveOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	notifier.AssertNotCalled(t, "NotifyOrderStatusChanged", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveOrderCommandHandler_Handle_ConcurrentModification(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.StatusPendingApproval)
	cmd, err := commands.NewApproveOrderCommand(stored.ID(), 20)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored, order.StatusPendingApproval).
			Return(errs.NewConcurrentModificationError("orderId", stored.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewApproveOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	notifier.AssertNotCalled(t, "NotifyOrderStatusChanged", mock.Anything, mock.Anything)
}
