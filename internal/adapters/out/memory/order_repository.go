package memory

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over the in-memory
// store. Writes are staged in the owning unit of work; reads see committed
// state. Stored aggregates are never mutated in place: status changes
// arrive as replacement values via Update.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add stages a new order, keyed by its own id.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.stage(func(s *Store) {
		s.orders[aggregate.ID().String()] = aggregate
	})
	return nil
}

// Update stages a replacement for an existing order. Fails with an
// ObjectNotFoundError when the id has no committed entry.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	s := r.uow.store
	s.mu.RLock()
	_, ok := s.orders[key]
	s.mu.RUnlock()

	if !ok {
		return errs.NewObjectNotFoundError("order", key)
	}

	r.uow.stage(func(s *Store) {
		s.orders[key] = aggregate
	})
	return nil
}

// Get retrieves a committed order by id.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s := r.uow.store
	s.mu.RLock()
	o, ok := s.orders[id.String()]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// GetAll retrieves every committed order in map iteration order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

// GetAllInStatus retrieves the committed orders with the given status.
func (r *OrderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, o := range s.orders {
		if o.Status() == status {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// Remove stages deletion of the order with the given id.
// Removing an absent id is a no-op.
func (r *OrderRepository) Remove(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.uow.stage(func(s *Store) {
		delete(s.orders, id.String())
	})
	return nil
}
