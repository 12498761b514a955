package queries

import (
	"context"

	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
)

// GetAllProductsQueryHandler retrieves the catalog through the repository port.
type GetAllProductsQueryHandler struct {
	productRepo ports.ProductRepository
}

// NewGetAllProductsQueryHandler creates a handler reading from the given
// product repository.
func NewGetAllProductsQueryHandler(productRepo ports.ProductRepository) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{productRepo: productRepo}
}

// Handle executes the query and returns all catalog entries.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.productRepo.GetAll(ctx)
}
