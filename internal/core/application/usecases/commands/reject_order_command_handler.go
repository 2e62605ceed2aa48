package commands

import (
	"context"
)

// RejectOrderCommandHandler cancels a pending order with a customer-facing
// reason. Rejection is only possible before approval; once the kitchen is
// involved the order can no longer be declined through this path.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewRejectOrderCommandHandler creates a handler for order rejection operations.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order rejection command.
// The write is guarded by the status read at load time, so a rejection that
// races with an approval loses cleanly instead of clobbering it.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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
	if err = aggregate.Reject(cmd.Reason()); err != nil {
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
