package order_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id, name string) product.Product {
	t.Helper()
	p, err := product.NewProduct(id, name)
	require.NoError(t, err)
	return p
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	banana := mustProduct(t, "1", "Banana")
	kiwi := mustProduct(t, "2", "Kiwi")
	placedAt := time.Now()

	t.Run("should create valid order", func(t *testing.T) {
		o, err := order.NewOrder(validID, []product.Product{banana, kiwi}, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, []product.Product{banana, kiwi}, o.Products())
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, placedAt, o.OrderedAt())
	})

	t.Run("should keep duplicate products in placement order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), []product.Product{banana, banana, kiwi}, placedAt)

		require.NoError(t, err)
		assert.Equal(t, []product.Product{banana, banana, kiwi}, o.Products())
	})

	t.Run("should snapshot the product slice", func(t *testing.T) {
		products := []product.Product{banana, kiwi}
		o, err := order.NewOrder(kernel.NewUUID(), products, placedAt)
		require.NoError(t, err)

		products[0] = kiwi

		assert.Equal(t, []product.Product{banana, kiwi}, o.Products())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, []product.Product{banana}, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with no products", func(t *testing.T) {
		o, err := order.NewOrder(validID, nil, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "products")
	})

	t.Run("should fail with unconstructed product", func(t *testing.T) {
		o, err := order.NewOrder(validID, []product.Product{{}}, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})

	t.Run("should fail with zero placement time", func(t *testing.T) {
		o, err := order.NewOrder(validID, []product.Product{banana}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "orderedAt")
	})
}

func TestRestoreOrder(t *testing.T) {
	banana := mustProduct(t, "1", "Banana")
	placedAt := time.Now()

	t.Run("should restore with explicit status", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.RestoreOrder(id, []product.Product{banana}, order.Completed, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.ID().IsEqual(id))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), []product.Product{banana}, order.Unknown, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	banana := mustProduct(t, "1", "Banana")
	placedAt := time.Now()

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), []product.Product{banana}, placedAt)
		require.NoError(t, err)
		return o
	}

	t.Run("should change only the status", func(t *testing.T) {
		o := newOrder(t)

		updated, err := o.ChangeStatus(order.Completed)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, updated.Status())
		assert.True(t, updated.ID().IsEqual(o.ID()))
		assert.Equal(t, o.Products(), updated.Products())
		assert.Equal(t, o.OrderedAt(), updated.OrderedAt())
	})

	t.Run("should not mutate the receiver", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.ChangeStatus(order.InDelivery)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("should allow any transition including backwards", func(t *testing.T) {
		o := newOrder(t)

		completed, err := o.ChangeStatus(order.Completed)
		require.NoError(t, err)

		backToProcessing, err := completed.ChangeStatus(order.Processing)
		require.NoError(t, err)
		assert.Equal(t, order.Processing, backToProcessing.Status())
	})

	t.Run("should be idempotent for the same status", func(t *testing.T) {
		o := newOrder(t)

		once, err := o.ChangeStatus(order.InDelivery)
		require.NoError(t, err)
		twice, err := once.ChangeStatus(order.InDelivery)
		require.NoError(t, err)

		assert.Equal(t, once.Status(), twice.Status())
		assert.Equal(t, once.OrderedAt(), twice.OrderedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o := newOrder(t)

		updated, err := o.ChangeStatus(order.Unknown)

		require.Error(t, err)
		assert.Nil(t, updated)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
