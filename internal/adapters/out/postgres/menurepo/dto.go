// Package menurepo provides read access to the restaurant menu for order
// placement. Menu rows are looked up at placement time; orders snapshot the
// name and price they saw, so later menu edits never touch existing orders.
package menurepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for menu entries.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:128"`
	PriceCents  int64
	IsAvailable bool
}

// TableName specifies the database table name for menu entries.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func toMenuItem(dto MenuItemDTO) (ports.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.MenuItem{}, err
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return ports.MenuItem{}, err
	}

	return ports.MenuItem{
		ID:          id,
		Name:        dto.Name,
		Price:       price,
		IsAvailable: dto.IsAvailable,
	}, nil
}
