package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrApproveOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
		"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
	)
	ErrEstimatedMinutesIsInvalid = errs.NewValueIsInvalidError("estimated minutes must be greater than 0")
)

// ApproveOrderCommand represents a manager's decision to accept a pending
// order, together with the promised preparation estimate.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	estimatedMinutes int

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve a pending order.
// The estimate must be a positive number of minutes.
func NewApproveOrderCommand(orderID kernel.UUID, estimatedMinutes int) (ApproveOrderCommand, error) {
	approveCommand := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approveCommand.setOrderID(orderID),
		approveCommand.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to approve.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EstimatedMinutes returns the promised preparation time in minutes.
func (c ApproveOrderCommand) EstimatedMinutes() int {
	return c.estimatedMinutes
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setEstimatedMinutes(estimatedMinutes int) error {
	if estimatedMinutes <= 0 {
		return ErrEstimatedMinutesIsInvalid
	}

	c.estimatedMinutes = estimatedMinutes
	return nil
}
