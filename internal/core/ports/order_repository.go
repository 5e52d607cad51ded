// Package ports defines the outbound interfaces of the application core:
// repositories, the unit of work, and the notification channel. Adapters
// implement these interfaces; the core never depends on an adapter.
package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/order"
)

// OrderRepository persists the order collection. The collection is stored
// newest-first and is written back as a whole after every mutation, so a
// successful Add or Update implies the full collection is durable.
type OrderRepository interface {
	// Add inserts a new order at the head of the collection.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order with the same identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order, newest-first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetActive returns the order currently in accepted status.
	// Returns an ObjectNotFoundError when no order is active.
	GetActive(ctx context.Context) (*order.Order, error)
}
