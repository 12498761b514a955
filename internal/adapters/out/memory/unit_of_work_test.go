package memory_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/memory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id, name string) product.Product {
	t.Helper()
	p, err := product.NewProduct(id, name)
	require.NoError(t, err)
	return p
}

func mustOrder(t *testing.T, products ...product.Product) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), products, time.Now())
	require.NoError(t, err)
	return o
}

// commitProduct stores a product through its own unit of work.
func commitProduct(t *testing.T, factory ports.UnitOfWorkFactory, p product.Product) {
	t.Helper()
	ctx := context.Background()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ProductRepository().Add(ctx, p))
	require.NoError(t, uow.Commit(ctx))
}

// commitOrder stores an order through its own unit of work.
func commitOrder(t *testing.T, factory ports.UnitOfWorkFactory, o *order.Order) {
	t.Helper()
	ctx := context.Background()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	uow := factory.Create()

	require.ErrorIs(t, uow.Commit(context.Background()), memory.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Rollback(context.Background()), memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_StagedWritesInvisibleUntilCommit(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	banana := mustProduct(t, "1", "Banana")

	writer := factory.Create()
	require.NoError(t, writer.Begin(ctx))
	require.NoError(t, writer.ProductRepository().Add(ctx, banana))

	// a concurrent reader sees nothing before the commit
	reader := factory.Create()
	require.NoError(t, reader.Begin(ctx))
	_, err := reader.ProductRepository().Get(ctx, "1")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NoError(t, reader.Rollback(ctx))

	require.NoError(t, writer.Commit(ctx))

	after := factory.Create()
	require.NoError(t, after.Begin(ctx))
	got, err := after.ProductRepository().Get(ctx, "1")
	require.NoError(t, err)
	assert.True(t, got.IsEqual(banana))
}

func TestUnitOfWork_RollbackDiscardsStagedWrites(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, mustOrder(t, mustProduct(t, "1", "Banana"))))
	require.NoError(t, uow.Rollback(ctx))

	check := factory.Create()
	require.NoError(t, check.Begin(ctx))
	orders, err := check.OrderRepository().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("add and get", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())
		banana := mustProduct(t, "1", "Banana")
		commitProduct(t, factory, banana)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		got, err := uow.ProductRepository().Get(ctx, "1")

		require.NoError(t, err)
		assert.Equal(t, "Banana", got.Name())
	})

	t.Run("add overwrites existing id", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())
		commitProduct(t, factory, mustProduct(t, "1", "Banana"))
		commitProduct(t, factory, mustProduct(t, "1", "Kiwi"))

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		got, err := uow.ProductRepository().Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Kiwi", got.Name())

		all, err := uow.ProductRepository().GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("get absent id fails with ObjectNotFound", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		_, err := uow.ProductRepository().Get(ctx, "999")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects unconstructed product", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		err := uow.ProductRepository().Add(ctx, product.Product{})

		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	banana := func(t *testing.T) product.Product { return mustProduct(t, "1", "Banana") }

	t.Run("add and get", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())
		o := mustOrder(t, banana(t))
		commitOrder(t, factory, o)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		got, err := uow.OrderRepository().Get(ctx, o.ID())

		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
	})

	t.Run("get absent id fails with ObjectNotFound", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		_, err := uow.OrderRepository().Get(ctx, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("update replaces the stored aggregate", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())
		o := mustOrder(t, banana(t))
		commitOrder(t, factory, o)

		updated, err := o.ChangeStatus(order.Completed)
		require.NoError(t, err)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Update(ctx, updated))
		require.NoError(t, uow.Commit(ctx))

		check := factory.Create()
		require.NoError(t, check.Begin(ctx))
		got, err := check.OrderRepository().Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Completed, got.Status())
		assert.Equal(t, o.OrderedAt(), got.OrderedAt())
	})

	t.Run("update absent order fails and commits nothing", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())
		o := mustOrder(t, banana(t))

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		err := uow.OrderRepository().Update(ctx, o)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("get all in status filters exactly", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())
		processing := mustOrder(t, banana(t))
		completedBase := mustOrder(t, banana(t))
		completed, err := completedBase.ChangeStatus(order.Completed)
		require.NoError(t, err)
		commitOrder(t, factory, processing)
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, completed))
		require.NoError(t, uow.Commit(ctx))

		check := factory.Create()
		require.NoError(t, check.Begin(ctx))
		inProcessing, err := check.OrderRepository().GetAllInStatus(ctx, order.Processing)
		require.NoError(t, err)
		require.Len(t, inProcessing, 1)
		assert.True(t, inProcessing[0].IsEqual(processing))

		inDelivery, err := check.OrderRepository().GetAllInStatus(ctx, order.InDelivery)
		require.NoError(t, err)
		assert.Empty(t, inDelivery)
	})

	t.Run("remove absent id is a no-op", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Remove(ctx, kernel.NewUUID()))
		require.NoError(t, uow.Commit(ctx))
	})

	t.Run("remove deletes the order", func(t *testing.T) {
		factory := memory.NewUnitOfWorkFactory(memory.NewStore())
		o := mustOrder(t, banana(t))
		commitOrder(t, factory, o)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Remove(ctx, o.ID()))
		require.NoError(t, uow.Commit(ctx))

		check := factory.Create()
		require.NoError(t, check.Begin(ctx))
		_, err := check.OrderRepository().Get(ctx, o.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
