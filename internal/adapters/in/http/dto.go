package http

import (
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
)

// Error is the JSON body returned on request failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Product is the JSON representation of a catalog entry.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewProduct is the request body for catalog registration.
type NewProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewOrder is the request body for order placement.
type NewOrder struct {
	ProductIDs []string `json:"product_ids"`
}

// NewStatus is the request body for order status changes.
type NewStatus struct {
	Status string `json:"status"`
}

// Order is the JSON representation of an order.
type Order struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	OrderedAt time.Time `json:"ordered_at"`
	Products  []Product `json:"products"`
}

func toProductResponse(p product.Product) Product {
	return Product{
		ID:   p.ID(),
		Name: p.Name(),
	}
}

func toOrderResponse(aggregate *order.Order) Order {
	products := aggregate.Products()
	response := Order{
		ID:        aggregate.ID().String(),
		Status:    aggregate.Status().String(),
		OrderedAt: aggregate.OrderedAt(),
		Products:  make([]Product, 0, len(products)),
	}
	for _, p := range products {
		response.Products = append(response.Products, toProductResponse(p))
	}
	return response
}
