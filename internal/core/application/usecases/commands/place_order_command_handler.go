package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves every requested product id against the catalog, mints a fresh
// order id, and persists the new order in Processing status.
//
// An unresolvable product id aborts the whole placement: the returned error
// wraps errs.ErrObjectNotFound and no order is stored.
type PlaceOrderCommandHandler struct {
	uowFactory  UoWFactory
	idGenerator ports.IDGenerator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning catalog and order store, and an id
// generator for new order identities.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, idGenerator ports.IDGenerator) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		idGenerator: idGenerator,
	}
}

// Handle processes the placement command and returns the stored order.
// Products are resolved in input order and snapshotted into the order, so
// later catalog changes do not affect it. The order starts in Processing
// status with orderedAt set to the current time.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	products := make([]product.Product, 0, len(cmd.ProductIDs()))
	for _, productID := range cmd.ProductIDs() {
		p, err := productRepo.Get(ctx, productID)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	newOrder, err := order.NewOrder(h.idGenerator.GenerateID(), products, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
