package services

import (
	"errors"

	"ordering/internal/core/domain/model/order"
)

// ErrUnknownEventKind is returned when routing is requested for an event kind
// the router does not recognize.
var ErrUnknownEventKind = errors.New("unknown event kind")

// EventKind identifies a category of order event for routing purposes.
type EventKind string

const (
	// EventKindNewOrder is emitted once, when a customer submits an order.
	EventKindNewOrder EventKind = "new-order"

	// EventKindStatusUpdate is emitted on every subsequent lifecycle change.
	EventKindStatusUpdate EventKind = "order-status-update"
)

// Audience identifies a notification recipient group. Broadcast audiences
// (manager, kitchen) address every member of a role; the customer audience is
// scoped to a single session.
type Audience string

const (
	// AudienceManager addresses all connected manager consoles.
	AudienceManager Audience = "manager"

	// AudienceKitchen addresses all connected kitchen displays.
	AudienceKitchen Audience = "kitchen"
)

// CustomerAudience addresses the single customer session that placed an order.
func CustomerAudience(sessionID string) Audience {
	return Audience("customer." + sessionID)
}

// NotificationRouter is a domain service that decides who must hear about an
// order event.
//
// Business rules:
//   - New orders are announced to managers only: the kitchen must not see
//     orders that have not been approved, and the customer already knows they
//     just ordered.
//   - Status updates go to managers, the kitchen, and the customer session that
//     placed the order, so every party tracks the same lifecycle.
//
// The router resolves audiences; it does not deliver anything. Delivery is an
// infrastructure concern handled behind the NotificationPublisher port.
type NotificationRouter struct{}

// NewNotificationRouter creates a new NotificationRouter instance.
func NewNotificationRouter() NotificationRouter {
	return NotificationRouter{}
}

// Route resolves the audiences for an event about the given order.
//
// Returns ErrUnknownEventKind for unrecognized kinds and the order's own
// validation error when the order was not properly constructed.
func (r NotificationRouter) Route(kind EventKind, o *order.Order) ([]Audience, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case EventKindNewOrder:
		return []Audience{AudienceManager}, nil
	case EventKindStatusUpdate:
		return []Audience{
			AudienceManager,
			AudienceKitchen,
			CustomerAudience(o.CustomerSessionID()),
		}, nil
	default:
		return nil, ErrUnknownEventKind
	}
}
