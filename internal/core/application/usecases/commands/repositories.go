// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and best-effort notification.
package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// Notifier announces order events to interested parties after a command
// commits. Implementations are fire-and-forget: they never return an error
// and never block a command outcome on delivery. A lost notification is
// recovered by clients re-reading order state.
type Notifier interface {
	// NotifyOrderCreated announces a newly placed order.
	NotifyOrderCreated(ctx context.Context, aggregate *order.Order)

	// NotifyOrderStatusChanged announces a lifecycle change on an existing order.
	NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order)
}
