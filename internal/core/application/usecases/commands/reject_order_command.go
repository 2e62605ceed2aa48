package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
	ErrRejectReasonIsRequired = errs.NewValueIsRequiredError("reject reason")
)

// RejectOrderCommand represents a manager's decision to decline a pending
// order. The reason is shown to the customer, so it must not be blank.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject a pending order.
func NewRejectOrderCommand(orderID kernel.UUID, reason string) (RejectOrderCommand, error) {
	rejectCommand := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setReason(reason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to reject.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the customer-facing explanation for the rejection.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrRejectReasonIsRequired
	}

	c.reason = reason
	return nil
}
