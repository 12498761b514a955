// Package http exposes the order and catalog use cases over a REST API.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addProductHandler   commands.AddProductCommandHandler
	placeOrderHandler   commands.PlaceOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getAllProductsHandler queries.GetAllProductsQueryHandler
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getByStatusHandler    queries.GetOrdersByStatusQueryHandler
	getOldestHandler      queries.GetOldestOrderPerStatusQueryHandler

	eventPublisher ports.OrderEventPublisher
	shopMetrics    *metrics.ShopMetrics
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	addProductHandler commands.AddProductCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOldestHandler queries.GetOldestOrderPerStatusQueryHandler,
	eventPublisher ports.OrderEventPublisher,
	shopMetrics *metrics.ShopMetrics,
) *Server {
	return &Server{
		addProductHandler:     addProductHandler,
		placeOrderHandler:     placeOrderHandler,
		changeStatusHandler:   changeStatusHandler,
		getAllProductsHandler: getAllProductsHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		getByStatusHandler:    getByStatusHandler,
		getOldestHandler:      getOldestHandler,
		eventPublisher:        eventPublisher,
		shopMetrics:           shopMetrics,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/products", s.CreateProduct)
	e.GET("/api/v1/products", s.GetProducts)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders", s.GetOrders)
	e.POST("/api/v1/orders/:id/status", s.ChangeOrderStatus)
	e.GET("/api/v1/orders/oldest", s.GetOldestOrders)
}

// CreateProduct handles POST /api/v1/products - registers a catalog entry.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddProductCommand(body.ID, body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.addProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create product")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetProducts handles GET /api/v1/products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAllProductsQuery()

	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}

	response := make([]Product, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order for the given
// product ids.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(body.ProductIDs)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Unknown product: "+err.Error())
		}
		return internalError(ctx, "Failed to create order")
	}

	s.shopMetrics.OrdersPlaced.Inc()

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// GetOrders handles GET /api/v1/orders - retrieves orders, optionally
// filtered by the status query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	statusParam := ctx.QueryParam("status")
	if statusParam == "" {
		orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
		if err != nil {
			return internalError(ctx, "Failed to retrieve orders")
		}
		return ctx.JSON(http.StatusOK, toOrdersResponse(orders))
	}

	status, err := order.StatusFromString(statusParam)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+statusParam)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+statusParam)
	}

	orders, err := s.getByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrdersResponse(orders))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// to the requested status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var body NewStatus
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+body.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Unknown order: "+orderID.String())
		}
		return internalError(ctx, "Failed to change order status")
	}

	s.shopMetrics.StatusChanges.WithLabelValues(status.String()).Inc()

	if publishErr := s.eventPublisher.PublishStatusChanged(ctx.Request().Context(), updated); publishErr != nil {
		// the state change is already committed, so only log the lost event
		slog.Error("publish status change", "order_id", updated.ID(), "error", publishErr)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetOldestOrders handles GET /api/v1/orders/oldest - returns the oldest
// order for every status as a status-keyed object, with null entries for
// statuses that have no orders.
func (s *Server) GetOldestOrders(ctx echo.Context) error {
	query := queries.NewGetOldestOrderPerStatusQuery()

	oldest, err := s.getOldestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve oldest orders")
	}

	response := make(map[string]*Order, len(oldest))
	for status, o := range oldest {
		if o == nil {
			response[status.String()] = nil
			continue
		}
		entry := toOrderResponse(o)
		response[status.String()] = &entry
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrdersResponse(orders []*order.Order) []Order {
	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
