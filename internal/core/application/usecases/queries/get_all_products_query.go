package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrGetAllProductsQueryIsNotConstructed = errors.New(
		"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
	)
)

// GetAllProductsQuery retrieves every catalog entry.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a parameterless query for the catalog.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}
