package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Iteration order of the bulk getters is implementation-defined; callers
// must not rely on it for anything beyond existence and count checks.
type OrderRepository interface {
	// Add persists a new order aggregate, keyed by its own id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order that has the aggregate's id.
	// Fails with an ObjectNotFoundError when no such order exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Fails with an ObjectNotFoundError when the id is absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves the orders whose status equals the given one.
	// Returns an empty slice when none match.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Remove deletes the order with the given id. Removing an absent id is
	// a no-op, not an error. Removed ids are never reused.
	Remove(ctx context.Context, id kernel.UUID) error
}
