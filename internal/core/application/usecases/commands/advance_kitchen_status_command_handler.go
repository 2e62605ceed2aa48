package commands

import (
	"context"
)

// AdvanceKitchenStatusCommandHandler applies kitchen progress reports to an
// order. Moving to preparing puts the order in progress; moving to ready
// marks it ready for pickup. The kitchen sub-lifecycle is forward-only, so
// duplicate or out-of-order reports are rejected by the domain.
type AdvanceKitchenStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewAdvanceKitchenStatusCommandHandler creates a handler for kitchen progress operations.
func NewAdvanceKitchenStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
) AdvanceKitchenStatusCommandHandler {
	return AdvanceKitchenStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the kitchen progress command.
// Two kitchen displays reporting the same order concurrently race on the
// status guard: the first write wins and the second is rejected with
// errs.ErrConcurrentModification.
func (h AdvanceKitchenStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceKitchenStatusCommand) error {
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
	if err = aggregate.AdvanceKitchen(cmd.Target()); err != nil {
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
