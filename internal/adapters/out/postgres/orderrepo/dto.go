// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and customer session.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber          string    `gorm:"size:32;uniqueIndex"`
	Status               int       `gorm:"index"`
	KitchenStatus        int
	TableNumber          int
	CustomerSessionID    string `gorm:"index"`
	PaymentMethod        int
	TotalAmountCents     int64
	CancelReason         string
	CreatedAt            time.Time
	ExpectedCompletionAt *time.Time
	CompletedAt          *time.Time
	Items                []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line in the database. The surrogate
// primary key preserves insertion order within an order.
type OrderItemDTO struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID          uuid.UUID `gorm:"type:uuid"`
	Name                string
	UnitPriceCents      int64
	Quantity            int
	SpecialInstructions string
	Status              int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:             aggregate.ID().Bytes(),
			MenuItemID:          item.MenuItemID().Bytes(),
			Name:                item.Name(),
			UnitPriceCents:      item.UnitPrice().Cents(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
			Status:              int(item.Status()),
		})
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		OrderNumber:          aggregate.OrderNumber().String(),
		Status:               int(aggregate.Status()),
		KitchenStatus:        int(aggregate.KitchenStatus()),
		TableNumber:          aggregate.Table().Value(),
		CustomerSessionID:    aggregate.CustomerSessionID(),
		PaymentMethod:        int(aggregate.PaymentMethod()),
		TotalAmountCents:     aggregate.TotalAmount().Cents(),
		CancelReason:         aggregate.CancelReason(),
		CreatedAt:            aggregate.CreatedAt(),
		ExpectedCompletionAt: aggregate.ExpectedCompletionAt(),
		CompletedAt:          aggregate.CompletedAt(),
		Items:                items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the persisted total via RestoreOrder,
// so creation-time price snapshots survive round-trips unchanged.
func toDomain(dto OrderDTO, maxTables int) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	table, err := kernel.NewTableNumber(dto.TableNumber, maxTables)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmountCents)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		orderNumber,
		order.Status(dto.Status),
		order.KitchenStatus(dto.KitchenStatus),
		table,
		dto.CustomerSessionID,
		order.PaymentMethod(dto.PaymentMethod),
		items,
		totalAmount,
		dto.CancelReason,
		dto.CreatedAt,
		dto.ExpectedCompletionAt,
		dto.CompletedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(
		menuItemID,
		dto.Name,
		unitPrice,
		dto.Quantity,
		dto.SpecialInstructions,
		order.KitchenStatus(dto.Status),
	)
}
