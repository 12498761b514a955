package queries

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves every stored order through the
// repository port.
type GetAllOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler reading from the given
// order repository.
func NewGetAllOrdersQueryHandler(orderRepo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query and returns all orders.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.GetAll(ctx)
}
