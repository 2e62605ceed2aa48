package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order by identifier, including its
// items. Returns errs.ErrObjectNotFound when the order does not exist.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its full payload.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			kitchen_status,
			table_number,
			customer_session_id,
			payment_method,
			total_amount_cents,
			cancel_reason,
			created_at,
			expected_completion_at,
			completed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var rawID uuid.UUID
	resp, err := scanOrderRow(row, &rawID)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	itemsByOrder, err := fetchItems(ctx, h.db, []uuid.UUID{rawID})
	if err != nil {
		return OrderResponse{}, err
	}
	if items := itemsByOrder[rawID]; items != nil {
		resp.Items = items
	}

	return resp, nil
}
