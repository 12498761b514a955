package memory

import (
	"context"
	"errors"

	"shop/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// not called first or the transaction already finished.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances over a shared Store.
// Each business operation gets a fresh unit of work with its own staging
// area, isolated from other concurrent operations.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for Begin.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements ports.UnitOfWork over the in-memory store.
// Repository writes performed through it are collected as staged mutations;
// Commit applies them under the store's write lock in one critical section.
type UnitOfWork struct {
	store  *Store
	active bool
	staged []func(*Store)
}

// Begin starts the transaction. Calling Begin on an already active unit of
// work is a no-op, mirroring the database-backed adapter.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit applies all staged mutations atomically and ends the transaction.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	for _, apply := range uow.staged {
		apply(uow.store)
	}
	uow.store.mu.Unlock()

	uow.staged = nil
	uow.active = false
	return nil
}

// Rollback discards all staged mutations and ends the transaction.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.staged = nil
	uow.active = false
	return nil
}

// ProductRepository returns a ProductRepository bound to this unit of work.
func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &ProductRepository{uow: uow}
}

// OrderRepository returns an OrderRepository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

// stage records a mutation to apply on Commit.
func (uow *UnitOfWork) stage(apply func(*Store)) {
	uow.staged = append(uow.staged, apply)
}
