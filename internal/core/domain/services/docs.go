// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - NotificationRouter: A domain service for resolving which audiences must be
//     notified when an order event occurs
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
