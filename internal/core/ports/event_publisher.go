package ports

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// OrderEventPublisher notifies external consumers about order status
// changes. Publishing happens after the change is committed; a publish
// failure does not undo the change.
type OrderEventPublisher interface {
	// PublishStatusChanged emits an event for the order's current status.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error
}
