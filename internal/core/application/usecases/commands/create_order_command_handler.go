package commands

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Resolves requested menu lines against the menu, snapshots names and prices
// into the new order, and persists it in "pending_approval" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, menu, sessions, notifier, 50)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), 7, "session-42", order.PaymentMethodCard, lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending approval and managers have been notified
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	menu       ports.MenuProvider
	sessions   ports.SessionStore
	notifier   Notifier
	maxTables  int
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// maxTables bounds the accepted table number range.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	menu ports.MenuProvider,
	sessions ports.SessionStore,
	notifier Notifier,
	maxTables int,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		menu:       menu,
		sessions:   sessions,
		notifier:   notifier,
		maxTables:  maxTables,
	}
}

// Handle processes the order placement command.
// Every requested line must reference an existing, available menu item.
// On success the order is committed and managers are notified; notification
// delivery never affects the command outcome.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	table, err := kernel.NewTableNumber(cmd.TableNumber(), h.maxTables)
	if err != nil {
		return err
	}

	items, err := h.resolveLines(ctx, cmd.Lines())
	if err != nil {
		return err
	}

	now := time.Now()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		kernel.GenerateOrderNumber(now),
		table,
		cmd.CustomerSessionID(),
		cmd.PaymentMethod(),
		items,
		now,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Session bookkeeping is best-effort, same as notifications.
	_ = h.sessions.Touch(ctx, cmd.CustomerSessionID(), now)
	h.notifier.NotifyOrderCreated(ctx, aggregate)

	return nil
}

func (h CreateOrderCommandHandler) resolveLines(ctx context.Context, lines []OrderLine) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		menuItem, err := h.menu.GetByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}

		if !menuItem.IsAvailable {
			return nil, errs.NewValueIsInvalidErrorWithCause("menuItemId",
				fmt.Errorf("menu item %s is not available", menuItem.Name))
		}

		item, err := order.NewItem(menuItem.ID, menuItem.Name, menuItem.Price, line.Quantity, line.SpecialInstructions)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
