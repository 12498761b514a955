package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles order status updates. The update
// is copy-and-replace: the stored order is reloaded, a copy with the new
// status is persisted, and every other field carries over unchanged.
//
// A missing order id fails with an error wrapping errs.ErrObjectNotFound
// and leaves the store untouched.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status updates.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update and returns the updated order.
// Setting the status an order already has is a valid no-op update.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	updated, err := existing.ChangeStatus(cmd.Status())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
