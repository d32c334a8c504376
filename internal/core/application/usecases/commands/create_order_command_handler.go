package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the order aggregate in Draft status with its initial line items
// and persists it within a transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	item, _ := NewItemRequest("X1", 2, decimal.RequireFromString("9.99"))
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "cust-1", []ItemRequest{item})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now in Draft status and can be modified or confirmed
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Assigns fresh identifiers to the requested items, builds the aggregate in
// Draft status, and persists it. Uses a transaction to ensure the order is
// properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, req := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), req.Sku(), req.Quantity(), req.UnitPrice())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), items, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
