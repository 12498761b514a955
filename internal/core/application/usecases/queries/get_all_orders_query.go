// Package queries contains read-only operations over the shop state.
// Implements the Query side of the CQRS split: queries never modify the
// stores and read through the repository ports, so they work identically
// against the in-memory and database-backed adapters.
package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every stored order. Iteration order is
// implementation-defined; callers may rely only on existence and count.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
