package queries

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// GetOldestOrderPerStatusQueryHandler computes the oldest order for every
// defined status through the repository port.
type GetOldestOrderPerStatusQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOldestOrderPerStatusQueryHandler creates a handler reading from the
// given order repository.
func NewGetOldestOrderPerStatusQueryHandler(orderRepo ports.OrderRepository) GetOldestOrderPerStatusQueryHandler {
	return GetOldestOrderPerStatusQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query. The result has one entry per defined status;
// the entry is nil when no order carries that status. Equal placement times
// are broken by order id string comparison, so the result is deterministic.
func (h GetOldestOrderPerStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOldestOrderPerStatusQuery,
) (map[order.Status]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	oldest := make(map[order.Status]*order.Order, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		ordersInStatus, err := h.orderRepo.GetAllInStatus(ctx, status)
		if err != nil {
			return nil, err
		}

		var candidate *order.Order
		for _, o := range ordersInStatus {
			if candidate == nil || olderThan(o, candidate) {
				candidate = o
			}
		}
		oldest[status] = candidate
	}

	return oldest, nil
}

// olderThan orders by placement time, then by id string on ties.
func olderThan(a, b *order.Order) bool {
	if a.OrderedAt().Equal(b.OrderedAt()) {
		return a.ID().String() < b.ID().String()
	}
	return a.OrderedAt().Before(b.OrderedAt())
}
