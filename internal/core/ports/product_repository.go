// Package ports defines the contracts between the shop core and its
// infrastructure collaborators: repositories, the unit of work, the id
// generator, and the order event publisher. The interfaces enable
// dependency inversion and make the core testable against in-memory or
// database-backed adapters interchangeably.
package ports

import (
	"context"

	"shop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product catalog.
type ProductRepository interface {
	// Add persists a catalog entry. Adding an id that already exists
	// overwrites the previous entry (idempotent by id).
	Add(ctx context.Context, p product.Product) error

	// Get retrieves a product by its externally assigned identifier.
	// Fails with an ObjectNotFoundError when the id is absent.
	Get(ctx context.Context, id string) (product.Product, error)

	// GetAll retrieves every catalog entry. Iteration order is
	// implementation-defined.
	GetAll(ctx context.Context) ([]product.Product, error)
}
