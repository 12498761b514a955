package commands_test

import (
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	banana, _ := product.NewProduct("1", "Banana")
	kiwi, _ := product.NewProduct("2", "Kiwi")
	cmd, _ := commands.NewPlaceOrderCommand([]string{"1", "2", "1"})
	orderID := kernel.NewUUID()

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, "1").Return(banana, nil).Once(),
		productRepo.On("Get", mock.Anything, "2").Return(kiwi, nil).Once(),
		productRepo.On("Get", mock.Anything, "1").Return(banana, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, StubIDGenerator{ID: orderID})
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.True(t, placed.ID().IsEqual(orderID))
	assert.Equal(t, order.Processing, placed.Status())
	assert.Equal(t, []product.Product{banana, kiwi, banana}, placed.Products())
	assert.False(t, placed.OrderedAt().IsZero())
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory, StubIDGenerator{ID: kernel.NewUUID()})
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
}

func TestPlaceOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	banana, _ := product.NewProduct("1", "Banana")
	cmd, _ := commands.NewPlaceOrderCommand([]string{"1", "999"})
	notFound := errs.NewObjectNotFoundError("product", "999")

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, "1").Return(banana, nil).Once(),
		productRepo.On("Get", mock.Anything, "999").Return(product.Product{}, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, StubIDGenerator{ID: kernel.NewUUID()})
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, placed)
	// no OrderRepository call, no Add, no Commit
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand([]string{"1"})

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factory, StubIDGenerator{ID: kernel.NewUUID()})
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	banana, _ := product.NewProduct("1", "Banana")
	cmd, _ := commands.NewPlaceOrderCommand([]string{"1"})

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, "1").Return(banana, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, StubIDGenerator{ID: kernel.NewUUID()})
	placed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, placed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
