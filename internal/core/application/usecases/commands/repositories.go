// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: constructor validation,
// transaction management through a unit of work, and persistence.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers declare only the repositories they touch, so tests can
// mock the narrowest possible surface.
type (
	// TxManager handles the transaction lifecycle.
	// Ensures a command's writes become visible atomically.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductUoW manages transactions for catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new catalog unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions that span the catalog and the order store.
	// Used by order placement, which reads products and writes an order
	// within one boundary.
	UoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-store operations.
	UoWFactory interface {
		Create() UoW
	}
)
