package queries

import (
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves the orders whose status equals the
// requested one. An empty result is a valid answer, not an error.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for the given status.
// The status must be a member of the enumeration.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	q := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setStatus(status); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the requested status.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q *GetOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}
