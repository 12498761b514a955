package queries

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// GetOrdersByStatusQueryHandler retrieves orders filtered by exact status
// equality through the repository port.
type GetOrdersByStatusQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrdersByStatusQueryHandler creates a handler reading from the given
// order repository.
func NewGetOrdersByStatusQueryHandler(orderRepo ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query. Returns an empty slice when no order carries
// the requested status.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.GetAllInStatus(ctx, query.Status())
}
