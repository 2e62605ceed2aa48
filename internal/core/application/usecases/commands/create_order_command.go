package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errs.NewValueIsRequiredError(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerSessionIsRequired = errs.NewValueIsRequiredError("customer session id")
	ErrOrderLinesAreRequired     = errs.NewValueIsRequiredError("at least one order line")
	ErrOrderLineIsInvalid        = errs.NewValueIsInvalidError(
		"order line must reference a menu item and have quantity greater than 0",
	)
)

// OrderLine is a single requested menu position within a CreateOrderCommand.
// It carries only the reference and quantity; name and price are resolved
// from the menu at handling time and snapshotted into the order.
type OrderLine struct {
	MenuItemID          kernel.UUID
	Quantity            int
	SpecialInstructions string
}

// CreateOrderCommand represents a customer's request to place a new order.
// Encapsulates the table, session, payment choice and requested menu lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, 7, "session-42", order.PaymentMethodCard, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	tableNumber       int
	customerSessionID string
	paymentMethod     order.PaymentMethod
	lines             []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the order ID, session, payment method and every order line.
// Table range validation is deferred to the handler, which knows the
// restaurant's table count.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tableNumber int,
	customerSessionID string,
	paymentMethod order.PaymentMethod,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		tableNumber: tableNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerSessionID(customerSessionID),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableNumber returns the raw table number requested by the customer.
func (c CreateOrderCommand) TableNumber() int {
	return c.tableNumber
}

// CustomerSessionID returns the session that placed the order.
func (c CreateOrderCommand) CustomerSessionID() string {
	return c.customerSessionID
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Lines returns the requested menu lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerSessionID(customerSessionID string) error {
	if strings.TrimSpace(customerSessionID) == "" {
		return ErrCustomerSessionIsRequired
	}

	c.customerSessionID = customerSessionID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if line.MenuItemID.Validate() != nil || line.Quantity <= 0 {
			return ErrOrderLineIsInvalid
		}
	}

	c.lines = lines
	return nil
}
