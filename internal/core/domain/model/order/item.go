package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one line of an order: a menu entry with its price snapshotted at order
// time. The snapshot means later menu edits never change what the customer agreed
// to pay.
//
// The optional Status mirrors the order-level kitchen progress and is informational
// only; the order-level KitchenStatus stays authoritative.
type Item struct {
	menuItemID          kernel.UUID
	name                string
	unitPrice           kernel.Money
	quantity            int
	specialInstructions string
	status              KitchenStatus

	isConstructed bool
}

// NewItem creates an order line for the given menu entry.
//
// Parameters:
//   - menuItemID: Identifier of the menu entry (must be valid)
//   - name: Display name snapshotted from the menu (must not be blank)
//   - unitPrice: Price snapshotted from the menu at order time
//   - quantity: Number of units (must be at least 1)
//   - specialInstructions: Optional free-text request from the customer
func NewItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	specialInstructions string,
) (Item, error) {
	item := Item{
		specialInstructions: specialInstructions,
		status:              KitchenStatusNone,
		isConstructed:       true,
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistence, including its
// informational kitchen status.
func RestoreItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	specialInstructions string,
	status KitchenStatus,
) (Item, error) {
	item, err := NewItem(menuItemID, name, unitPrice, quantity, specialInstructions)
	if err != nil {
		return Item{}, err
	}

	if err = status.Validate(); err != nil {
		return Item{}, err
	}
	item.status = status

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the identifier of the menu entry this line refers to.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the display name snapshotted at order time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price snapshotted at order time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// SpecialInstructions returns the customer's free-text request, if any.
func (i Item) SpecialInstructions() string {
	return i.specialInstructions
}

// Status returns the informational kitchen progress for this line.
func (i Item) Status() KitchenStatus {
	return i.status
}

// Subtotal returns unit price multiplied by quantity.
func (i Item) Subtotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MultiplyBy(i.quantity)
}

// markKitchenProgress mirrors the order-level kitchen status onto the line.
// Called by the Order aggregate; informational only.
func (i *Item) markKitchenProgress(status KitchenStatus) {
	i.status = status
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}
