// Package queries contains read-only operations for retrieving order state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL, bypassing the domain model and unit of work.
package queries

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// OrderItemResponse represents a single order line in query results.
// Prices and names are the snapshots taken at placement time.
type OrderItemResponse struct {
	MenuItemID          kernel.UUID
	Name                string
	UnitPriceCents      int64
	Quantity            int
	SpecialInstructions string
	Status              string
}

// OrderResponse represents a complete order in query results. It carries the
// full payload clients need to render an order without further requests.
type OrderResponse struct {
	ID                   kernel.UUID
	OrderNumber          string
	Status               string
	KitchenStatus        string
	TableNumber          int
	CustomerSessionID    string
	PaymentMethod        string
	Items                []OrderItemResponse
	TotalAmountCents     int64
	CancelReason         string
	CreatedAt            time.Time
	ExpectedCompletionAt *time.Time
	CompletedAt          *time.Time
}
