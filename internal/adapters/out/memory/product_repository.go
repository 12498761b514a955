package memory

import (
	"context"

	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"
)

// ProductRepository implements ports.ProductRepository over the in-memory
// store. Writes are staged in the owning unit of work; reads see committed
// state.
type ProductRepository struct {
	uow *UnitOfWork
}

// Add stages a catalog entry. An existing id is overwritten on commit.
func (r *ProductRepository) Add(_ context.Context, p product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.uow.stage(func(s *Store) {
		s.products[p.ID()] = p
	})
	return nil
}

// Get retrieves a committed product by id.
func (r *ProductRepository) Get(_ context.Context, id string) (product.Product, error) {
	s := r.uow.store
	s.mu.RLock()
	p, ok := s.products[id]
	s.mu.RUnlock()

	if !ok {
		return product.Product{}, errs.NewObjectNotFoundError("product", id)
	}
	return p, nil
}

// GetAll retrieves every committed catalog entry in map iteration order.
func (r *ProductRepository) GetAll(_ context.Context) ([]product.Product, error) {
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	return products, nil
}
