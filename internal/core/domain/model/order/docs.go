// Package order provides domain entities and business logic for order management
// in the restaurant ordering system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - KitchenStatus: A sub-state machine tracking food preparation progress
//   - Item: An order line with menu price snapshotted at order time
//
// Key business rules:
//   - Orders must have a valid identifier, table number, session, and at least one item
//   - Order status follows a defined workflow:
//     PendingApproval -> Approved -> InProgress -> Ready -> Completed,
//     with a rejection shortcut PendingApproval -> Cancelled
//   - Kitchen status only advances while the order is Approved or InProgress,
//     strictly forward: Pending -> Preparing -> Ready
//   - The total amount is computed from item price snapshots at creation and is
//     never recomputed from current menu prices
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
