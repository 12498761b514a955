// Package memory provides the in-process implementation of the shop's
// stores: keyed maps guarded by a read-write lock, with a unit of work that
// stages writes and applies them atomically on commit. It is the primary
// storage adapter; the postgres adapter offers the same contract backed by
// a database.
//
// Consistency model: repository reads see committed state only. A command's
// writes are staged inside its unit of work and become visible to every
// reader at once on Commit, so no caller ever observes a half-applied
// command. Rollback discards the staged writes without touching the store.
package memory

import (
	"sync"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
)

// Store holds the committed state of the product catalog and the order
// store. A single Store instance is shared by every unit of work created
// from the same factory.
type Store struct {
	mu       sync.RWMutex
	products map[string]product.Product
	orders   map[string]*order.Order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		products: make(map[string]product.Product),
		orders:   make(map[string]*order.Order),
	}
}
