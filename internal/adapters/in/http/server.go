// Package http provides the echo transport for the order lifecycle service.
// Handlers stay thin: they translate HTTP requests into commands and queries,
// and map business outcomes and error kinds onto status codes.
package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	addItemHandler     commands.AddItemCommandHandler
	confirmHandler     commands.ConfirmOrderCommandHandler
	cancelHandler      commands.CancelOrderCommandHandler
	removeItemHandler  commands.RemoveItemCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	confirmHandler commands.ConfirmOrderCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		addItemHandler:     addItemHandler,
		confirmHandler:     confirmHandler,
		cancelHandler:      cancelHandler,
		removeItemHandler:  removeItemHandler,
		getOrderHandler:    getOrderHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/items", s.AddItem)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.DELETE("/orders/:id/items/:itemId", s.RemoveItem)

	e.GET("/health", s.Health)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - creates a new Draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ItemRequest, 0, len(req.Items))
	for _, body := range req.Items {
		item, err := commands.NewItemRequest(body.Sku, body.Quantity, body.UnitPrice)
		if err != nil {
			return badRequest(ctx, "Invalid item data: "+err.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.CustomerID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves an order snapshot.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order")
	}
	if resp == nil {
		return notFound(ctx, "Order not found")
	}

	items := make([]OrderItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID.String(),
			Sku:       item.Sku,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:          resp.ID.String(),
		CustomerID:  resp.CustomerID,
		Status:      resp.Status,
		TotalAmount: resp.TotalAmount,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
		Version:     resp.Version,
		Items:       items,
	})
}

// AddItem handles POST /api/v1/orders/:id/items - appends a line item to a Draft order.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body ItemRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	item, err := commands.NewItemRequest(body.Sku, body.Quantity, body.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	cmd, err := commands.NewAddItemCommand(orderID, item)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return notFound(ctx, "Order not found")
		case errors.Is(handleErr, errs.ErrInvalidState):
			return conflict(ctx, "Order can no longer be modified")
		case errors.Is(handleErr, errs.ErrConcurrencyConflict):
			return conflict(ctx, "Order was modified concurrently")
		case errors.Is(handleErr, errs.ErrValueIsInvalid),
			errors.Is(handleErr, errs.ErrValueIsRequired):
			return badRequest(ctx, "Invalid item data: "+handleErr.Error())
		default:
			return internalError(ctx, "Failed to add item")
		}
	}

	return ctx.NoContent(http.StatusOK)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.confirmHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			return conflict(ctx, "Order was modified concurrently")
		}
		return internalError(ctx, "Failed to confirm order")
	}

	return actionResultResponse(ctx, result, "Order is not in a confirmable state")
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.cancelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			return conflict(ctx, "Order was modified concurrently")
		}
		return internalError(ctx, "Failed to cancel order")
	}

	return actionResultResponse(ctx, result, "Order is not in a cancellable state")
}

// RemoveItem handles DELETE /api/v1/orders/:id/items/:itemId.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request")
	}

	result, err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			return conflict(ctx, "Order was modified concurrently")
		}
		return internalError(ctx, "Failed to remove item")
	}

	return actionResultResponse(ctx, result, "Order can no longer be modified")
}

// actionResultResponse maps a business outcome onto an HTTP status code.
func actionResultResponse(
	ctx echo.Context,
	result commands.OrderActionResult,
	invalidStateMessage string,
) error {
	switch result {
	case commands.ActionSuccess:
		return ctx.NoContent(http.StatusOK)
	case commands.ActionNotFound:
		return notFound(ctx, "Order not found")
	case commands.ActionInvalidState:
		return conflict(ctx, invalidStateMessage)
	default:
		return internalError(ctx, "Unexpected operation outcome")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, ErrorResponse{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
