package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fetchOrdersByStatuses loads full order payloads for every order in one of
// the given statuses, oldest first. Items are fetched in a second query and
// stitched in, keeping both queries flat.
func fetchOrdersByStatuses(ctx context.Context, db *gorm.DB, statuses []int) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
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
		WHERE status IN ?
		ORDER BY created_at, id
	`, statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		resp, scanErr := scanOrderRow(rows, &id)
		if scanErr != nil {
			return nil, scanErr
		}

		orders = append(orders, resp)
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := fetchItems(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[ids[i]]
	}

	return orders, nil
}

// rowScanner is the subset of sql.Rows the scan helpers need.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner, rawID *uuid.UUID) (OrderResponse, error) {
	var (
		resp                 OrderResponse
		status               int
		kitchenStatus        int
		paymentMethod        int
		createdAt            time.Time
		expectedCompletionAt *time.Time
		completedAt          *time.Time
	)

	err := row.Scan(
		rawID,
		&resp.OrderNumber,
		&status,
		&kitchenStatus,
		&resp.TableNumber,
		&resp.CustomerSessionID,
		&paymentMethod,
		&resp.TotalAmountCents,
		&resp.CancelReason,
		&createdAt,
		&expectedCompletionAt,
		&completedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	id, err := kernel.UUIDFromBytes((*rawID)[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = id
	resp.Status = order.Status(status).String()
	resp.KitchenStatus = order.KitchenStatus(kitchenStatus).String()
	resp.PaymentMethod = order.PaymentMethod(paymentMethod).String()
	resp.CreatedAt = createdAt
	resp.ExpectedCompletionAt = expectedCompletionAt
	resp.CompletedAt = completedAt
	resp.Items = make([]OrderItemResponse, 0)

	return resp, nil
}

func fetchItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			unit_price_cents,
			quantity,
			special_instructions,
			status
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[uuid.UUID][]OrderItemResponse)
	for rows.Next() {
		var (
			orderID    uuid.UUID
			menuItemID uuid.UUID
			item       OrderItemResponse
			status     int
		)

		err = rows.Scan(
			&orderID,
			&menuItemID,
			&item.Name,
			&item.UnitPriceCents,
			&item.Quantity,
			&item.SpecialInstructions,
			&status,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		item.MenuItemID = id
		item.Status = order.KitchenStatus(status).String()
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}
