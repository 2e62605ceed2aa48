package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAdvanceKitchenStatusCommandIsNotConstructed = errs.NewValueIsRequiredError(
		"AdvanceKitchenStatusCommand must be created via NewAdvanceKitchenStatusCommand constructor",
	)
	ErrKitchenTargetIsInvalid = errs.NewValueIsInvalidError("kitchen status target must be preparing or ready")
)

// AdvanceKitchenStatusCommand represents the kitchen reporting preparation
// progress: either work has started (preparing) or the food is done (ready).
type AdvanceKitchenStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.KitchenStatus

	guard guard.ConstructorGuard
}

// NewAdvanceKitchenStatusCommand creates a command to advance kitchen progress.
// Only KitchenStatusPreparing and KitchenStatusReady are valid targets; the
// pending state is entered by approval, never reported by the kitchen.
func NewAdvanceKitchenStatusCommand(
	orderID kernel.UUID,
	target order.KitchenStatus,
) (AdvanceKitchenStatusCommand, error) {
	advanceCommand := AdvanceKitchenStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setOrderID(orderID),
		advanceCommand.setTarget(target),
	); err != nil {
		return AdvanceKitchenStatusCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceKitchenStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceKitchenStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being prepared.
func (c AdvanceKitchenStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the kitchen status being reported.
func (c AdvanceKitchenStatusCommand) Target() order.KitchenStatus {
	return c.target
}

func (c *AdvanceKitchenStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceKitchenStatusCommand) setTarget(target order.KitchenStatus) error {
	if target != order.KitchenStatusPreparing && target != order.KitchenStatusReady {
		return ErrKitchenTargetIsInvalid
	}

	c.target = target
	return nil
}
