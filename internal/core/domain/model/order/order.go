package order

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a dine-in order in the system. It is the aggregate root that
// manages the order lifecycle from placement through approval, preparation, and
// completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number, table, and session
//   - Must contain at least one item
//   - The total amount is the sum of item price snapshots, fixed at creation
//   - Status transitions follow the lifecycle state machine; kitchen status only
//     advances while the order is Approved or InProgress
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. State lives in the order store; this
// aggregate is reconstructed per operation.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable identifier, assigned once at creation
	orderNumber kernel.OrderNumber

	// status is the current state in the order lifecycle
	status Status

	// kitchenStatus tracks preparation progress during the approved/in-progress window
	kitchenStatus KitchenStatus

	// table is the restaurant table the order was placed from
	table kernel.TableNumber

	// paymentMethod records how the customer intends to pay
	paymentMethod PaymentMethod

	// customerSessionID identifies the originating customer session for
	// targeted notifications
	customerSessionID string

	// items holds the order lines in insertion order (insertion order = display order)
	items []Item

	// totalAmount is the sum of item subtotals, snapshotted at creation
	totalAmount kernel.Money

	// cancelReason is set when the order is rejected or force-cancelled
	cancelReason string

	createdAt            time.Time
	expectedCompletionAt *time.Time
	completedAt          *time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in PendingApproval status. This is the only way to
// place an order, ensuring all business invariants hold from the start.
//
// The total amount is computed here, once, from the item price snapshots. It is
// never recomputed afterwards, even if menu prices change.
//
// Parameters:
//   - id: Unique identifier for the order
//   - orderNumber: Human-readable identifier assigned at creation
//   - table: Validated table number
//   - customerSessionID: Originating customer session (must not be blank)
//   - paymentMethod: Chosen payment method
//   - items: Order lines (at least one)
//   - now: Creation timestamp
func NewOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	table kernel.TableNumber,
	customerSessionID string,
	paymentMethod PaymentMethod,
	items []Item,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        StatusPendingApproval,
		kitchenStatus: KitchenStatusNone,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setTable(table),
		order.setCustomerSessionID(customerSessionID),
		order.setPaymentMethod(paymentMethod),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	total, err := sumItems(order.items)
	if err != nil {
		return nil, err
	}
	order.totalAmount = total

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// Unlike NewOrder it accepts the persisted total amount as-is rather than
// recomputing it, preserving the creation-time snapshot.
func RestoreOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	status Status,
	kitchenStatus KitchenStatus,
	table kernel.TableNumber,
	customerSessionID string,
	paymentMethod PaymentMethod,
	items []Item,
	totalAmount kernel.Money,
	cancelReason string,
	createdAt time.Time,
	expectedCompletionAt *time.Time,
	completedAt *time.Time,
) (*Order, error) {
	order := &Order{
		cancelReason:         cancelReason,
		createdAt:            createdAt,
		expectedCompletionAt: expectedCompletionAt,
		completedAt:          completedAt,
		isConstructed:        true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setTable(table),
		order.setCustomerSessionID(customerSessionID),
		order.setPaymentMethod(paymentMethod),
		order.setItems(items),
		status.Validate(),
		kitchenStatus.Validate(),
		totalAmount.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	order.kitchenStatus = kitchenStatus
	order.totalAmount = totalAmount

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory
// function. This prevents bypassing validation by directly instantiating the
// struct, and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order identifier.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// KitchenStatus returns the current kitchen sub-status.
func (o *Order) KitchenStatus() KitchenStatus {
	return o.kitchenStatus
}

// Table returns the table the order was placed from.
func (o *Order) Table() kernel.TableNumber {
	return o.table
}

// CustomerSessionID returns the originating customer session identifier.
func (o *Order) CustomerSessionID() string {
	return o.customerSessionID
}

// PaymentMethod returns the chosen payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Items returns the order lines in display order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the total computed at creation time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CancelReason returns the recorded rejection/cancellation reason, if any.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ExpectedCompletionAt returns the completion estimate set at approval.
// Nil before approval. The estimate is customer-facing only; nothing expires
// the order when it passes.
func (o *Order) ExpectedCompletionAt() *time.Time {
	return o.expectedCompletionAt
}

// CompletedAt returns the completion timestamp. Nil until the order completes.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Age returns how long the order has existed at the given instant.
func (o *Order) Age(now time.Time) time.Duration {
	return now.Sub(o.createdAt)
}

// Approve accepts the order with a completion estimate.
//
// Business rules:
//   - The order must be in PendingApproval status
//   - The estimate must be positive
//
// On success the status becomes Approved, the kitchen status Pending, and
// the expected completion time is set to now + estimate. The estimate drives
// no internal timer; it is display information for the customer.
func (o *Order) Approve(estimate time.Duration, now time.Time) error {
	if estimate <= 0 {
		return errs.NewValueIsInvalidError("estimate")
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	expected := now.Add(estimate).UTC()
	o.status = newStatus
	o.kitchenStatus = KitchenStatusPending
	o.expectedCompletionAt = &expected
	o.mirrorKitchenProgress(KitchenStatusPending)
	return nil
}

// Reject declines a pending order, recording the reason.
//
// Business rules:
//   - The order must be in PendingApproval status
//   - The reason must not be blank
//
// On success the status becomes Cancelled, a terminal state.
func (o *Order) Reject(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	return nil
}

// AdvanceKitchen moves the kitchen sub-status one step forward.
//
// Business rules:
//   - The order status must be Approved or InProgress
//   - Only Pending -> Preparing and Preparing -> Ready are valid steps
//   - Entering Preparing also moves the order status to InProgress
//   - Entering Ready also moves the order status to Ready
//
// Item statuses are mirrored for display; the order-level kitchen status
// stays authoritative.
func (o *Order) AdvanceKitchen(target KitchenStatus) error {
	if o.status != StatusApproved && o.status != StatusInProgress {
		return errs.NewInvalidTransitionError("kitchen "+target.String(), o.status.String())
	}

	newKitchenStatus, err := o.kitchenStatus.Advance(target)
	if err != nil {
		return err
	}

	var newStatus Status
	switch target {
	case KitchenStatusPreparing:
		newStatus, err = o.status.StartPreparing()
	case KitchenStatusReady:
		newStatus, err = o.status.MarkReady()
	default:
		return errs.NewInvalidTransitionError("kitchen "+target.String(), o.status.String())
	}
	if err != nil {
		return err
	}

	o.status = newStatus
	o.kitchenStatus = newKitchenStatus
	o.mirrorKitchenProgress(newKitchenStatus)
	return nil
}

// Complete marks the order as served.
//
// Business rules:
//   - The order must be in Ready status
//
// On success the status becomes Completed, a terminal state, and the
// completion timestamp is recorded.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	completed := now.UTC()
	o.status = newStatus
	o.completedAt = &completed
	return nil
}

// ForceCancel cancels the order from any non-terminal state.
// Reserved for explicit administrative action; not exposed in the default flow.
func (o *Order) ForceCancel(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.ForceCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	return nil
}

func (o *Order) mirrorKitchenProgress(status KitchenStatus) {
	for i := range o.items {
		o.items[i].markKitchenProgress(status)
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setTable(table kernel.TableNumber) error {
	if err := table.Validate(); err != nil {
		return err
	}
	o.table = table
	return nil
}

func (o *Order) setCustomerSessionID(customerSessionID string) error {
	if strings.TrimSpace(customerSessionID) == "" {
		return errs.NewValueIsRequiredError("customerSessionId")
	}
	o.customerSessionID = customerSessionID
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func sumItems(items []Item) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}

		total, err = total.Add(subtotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}
