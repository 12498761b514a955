package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repository writes
// performed through it become visible to other callers only on Commit; a
// reader never observes a half-applied command.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit applies all staged changes atomically.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards all staged changes.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// ProductRepository returns a ProductRepository bound to the current
	// transaction.
	ProductRepository() ProductRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository
}
