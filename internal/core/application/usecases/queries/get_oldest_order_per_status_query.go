package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrGetOldestOrderPerStatusQueryIsNotConstructed = errors.New(
		"GetOldestOrderPerStatusQuery must be created via NewGetOldestOrderPerStatusQuery constructor",
	)
)

// GetOldestOrderPerStatusQuery computes, for every defined status, the
// order with the earliest placement time. Statuses with no orders appear in
// the result with a nil entry; absence is an answer, not an error.
type GetOldestOrderPerStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOldestOrderPerStatusQuery creates a parameterless query for the
// oldest order of each status.
func NewGetOldestOrderPerStatusQuery() GetOldestOrderPerStatusQuery {
	return GetOldestOrderPerStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOldestOrderPerStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOldestOrderPerStatusQueryIsNotConstructed)
}
