// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column is indexed for efficient querying by status.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    int       `gorm:"index"`
	OrderedAt time.Time
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one product snapshot line of an order. The idx
// column preserves the position the product had in the placement request.
type OrderItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Idx         int       `gorm:"primaryKey"`
	ProductID   string
	ProductName string
}

// TableName specifies the database table name for order item snapshots.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, one item row per product snapshot.
func fromDomain(aggregate *order.Order) OrderDTO {
	products := aggregate.Products()
	items := make([]OrderItemDTO, 0, len(products))
	for i, p := range products {
		items = append(items, OrderItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			Idx:         i,
			ProductID:   p.ID(),
			ProductName: p.Name(),
		})
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		Status:    int(aggregate.Status()),
		OrderedAt: aggregate.OrderedAt(),
		Items:     items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and product snapshots
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	products := make([]product.Product, 0, len(dto.Items))
	for _, item := range dto.Items {
		p, itemErr := product.NewProduct(item.ProductID, item.ProductName)
		if itemErr != nil {
			return nil, itemErr
		}
		products = append(products, p)
	}

	return order.RestoreOrder(id, products, order.Status(dto.Status), dto.OrderedAt)
}
