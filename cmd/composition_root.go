package cmd

import (
	"shop/internal/adapters/out/idgen"
	"shop/internal/adapters/out/kafka"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/ports"
)

type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	queryUoW   ports.UnitOfWork
}

func NewCompositionRoot(config Config, uowFactory ports.UnitOfWorkFactory) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: uowFactory,
		queryUoW:   uowFactory.Create(),
	}
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, idgen.NewUUIDGenerator())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.queryUoW.ProductRepository())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.queryUoW.OrderRepository())
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.queryUoW.OrderRepository())
}

func (c *CompositionRoot) CreateGetOldestOrderPerStatusQueryHandler() queries.GetOldestOrderPerStatusQueryHandler {
	return queries.NewGetOldestOrderPerStatusQueryHandler(c.queryUoW.OrderRepository())
}

func (c *CompositionRoot) CreateOrderEventPublisher() *kafka.OrderEventPublisher {
	return kafka.NewOrderEventPublisher(c.config.KafkaHost, c.config.KafkaOrderChangedTopic)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
