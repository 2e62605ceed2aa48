// Package notifications turns order lifecycle changes into events delivered
// to managers, kitchen displays and customer sessions.
//
// Delivery is strictly fire-and-forget: the dispatcher resolves audiences,
// serializes a full order payload, and hands it to the publisher. Failures
// are logged and swallowed so a broken broker can never fail an order
// operation; clients that miss an event recover by re-reading order state.
package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// Event is the wire format for a single order notification. The order payload
// is complete, so receivers can render it without a follow-up request.
type Event struct {
	Type       string       `json:"type"`
	OccurredAt time.Time    `json:"occurredAt"`
	Order      OrderPayload `json:"order"`
}

// OrderPayload carries the full state of one order.
type OrderPayload struct {
	ID                   string        `json:"id"`
	OrderNumber          string        `json:"orderNumber"`
	Status               string        `json:"status"`
	KitchenStatus        string        `json:"kitchenStatus,omitempty"`
	TableNumber          int           `json:"tableNumber"`
	CustomerSessionID    string        `json:"customerSessionId"`
	PaymentMethod        string        `json:"paymentMethod"`
	Items                []ItemPayload `json:"items"`
	TotalAmount          string        `json:"totalAmount"`
	CancelReason         string        `json:"cancelReason,omitempty"`
	CreatedAt            time.Time     `json:"createdAt"`
	ExpectedCompletionAt *time.Time    `json:"expectedCompletionAt,omitempty"`
	CompletedAt          *time.Time    `json:"completedAt,omitempty"`
}

// ItemPayload carries one order line inside an OrderPayload.
type ItemPayload struct {
	MenuItemID          string `json:"menuItemId"`
	Name                string `json:"name"`
	UnitPrice           string `json:"unitPrice"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
	Status              string `json:"status,omitempty"`
}

// Dispatcher implements the command layer's Notifier. It asks the domain
// router who should hear about an event and publishes one copy per audience.
type Dispatcher struct {
	router    services.NotificationRouter
	publisher ports.NotificationPublisher
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher delivering through the given publisher.
func NewDispatcher(publisher ports.NotificationPublisher, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		router:    services.NewNotificationRouter(),
		publisher: publisher,
		logger:    logger.With("component", "notification_dispatcher"),
	}
}

// NotifyOrderCreated announces a newly placed order to managers.
func (d *Dispatcher) NotifyOrderCreated(ctx context.Context, aggregate *order.Order) {
	d.dispatch(ctx, services.EventKindNewOrder, aggregate)
}

// NotifyOrderStatusChanged announces a lifecycle change to managers, the
// kitchen and the customer session that placed the order.
func (d *Dispatcher) NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) {
	d.dispatch(ctx, services.EventKindStatusUpdate, aggregate)
}

func (d *Dispatcher) dispatch(ctx context.Context, kind services.EventKind, aggregate *order.Order) {
	audiences, err := d.router.Route(kind, aggregate)
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to route notification", "event", string(kind), "error", err)
		return
	}

	payload, err := json.Marshal(Event{
		Type:       string(kind),
		OccurredAt: time.Now().UTC(),
		Order:      orderPayload(aggregate),
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to serialize notification",
			"event", string(kind), "orderId", aggregate.ID().String(), "error", err)
		return
	}

	for _, audience := range audiences {
		if pubErr := d.publisher.Publish(ctx, audience, payload); pubErr != nil {
			d.logger.ErrorContext(ctx, "Failed to publish notification",
				"event", string(kind),
				"audience", string(audience),
				"orderId", aggregate.ID().String(),
				"error", pubErr)
		}
	}
}

func orderPayload(aggregate *order.Order) OrderPayload {
	items := make([]ItemPayload, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemPayload{
			MenuItemID:          item.MenuItemID().String(),
			Name:                item.Name(),
			UnitPrice:           item.UnitPrice().String(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
			Status:              item.Status().String(),
		})
	}

	return OrderPayload{
		ID:                   aggregate.ID().String(),
		OrderNumber:          aggregate.OrderNumber().String(),
		Status:               aggregate.Status().String(),
		KitchenStatus:        aggregate.KitchenStatus().String(),
		TableNumber:          aggregate.Table().Value(),
		CustomerSessionID:    aggregate.CustomerSessionID(),
		PaymentMethod:        aggregate.PaymentMethod().String(),
		Items:                items,
		TotalAmount:          aggregate.TotalAmount().String(),
		CancelReason:         aggregate.CancelReason(),
		CreatedAt:            aggregate.CreatedAt(),
		ExpectedCompletionAt: aggregate.ExpectedCompletionAt(),
		CompletedAt:          aggregate.CompletedAt(),
	}
}
