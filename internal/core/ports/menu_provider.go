package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// MenuItem is a read-model snapshot of a menu entry at lookup time. Orders
// copy its name and price into their items, so later menu edits never affect
// orders already placed.
type MenuItem struct {
	ID          kernel.UUID
	Name        string
	Price       kernel.Money
	IsAvailable bool
}

// MenuProvider resolves menu items referenced by incoming orders.
type MenuProvider interface {
	// GetByID retrieves a menu item by its identifier.
	// Returns errs.ErrObjectNotFound when the item does not exist.
	GetByID(ctx context.Context, id kernel.UUID) (MenuItem, error)
}
