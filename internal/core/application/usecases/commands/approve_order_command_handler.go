package commands

import (
	"context"
	"time"
)

// ApproveOrderCommandHandler moves a pending order into the approved status
// and hands it to the kitchen queue.
//
// The status read at load time guards the write: if another manager decides
// the same order concurrently, the second write is rejected with
// errs.ErrConcurrentModification and nothing changes.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewApproveOrderCommandHandler creates a handler for order approval operations.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order approval command.
// Loads the order, applies the approval transition with the preparation
// estimate, and persists it guarded by the loaded status. All interested
// parties are notified after commit.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expectedStatus := aggregate.Status()
	estimate := time.Duration(cmd.EstimatedMinutes()) * time.Minute
	if err = aggregate.Approve(estimate, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, aggregate)

	return nil
}
