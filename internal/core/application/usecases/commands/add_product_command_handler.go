package commands

import (
	"context"

	"shop/internal/core/domain/model/product"
)

// AddProductCommandHandler registers catalog entries. Adding an existing id
// overwrites the previous entry, so seeding scripts can run repeatedly.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddProductCommandHandler creates a handler for catalog registration.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command within a transaction.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := product.NewProduct(cmd.ProductID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
