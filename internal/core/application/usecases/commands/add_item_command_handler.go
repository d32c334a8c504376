package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// AddItemCommandHandler handles appending a line item to a Draft order.
// Loads the aggregate, applies the mutation, and saves the new revision
// with optimistic concurrency control.
//
// Example:
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	item, _ := NewItemRequest("X2", 1, decimal.RequireFromString("5.30"))
//	cmd, _ := NewAddItemCommand(orderID, item)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a handler for item addition operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item addition command.
// Errors from the domain layer surface unchanged: a missing order yields an
// ObjectNotFoundError, a non-Draft order an InvalidStateError, and a save
// over a stale revision a ConcurrencyConflictError.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := order.NewItem(
		kernel.NewUUID(),
		cmd.Item().Sku(),
		cmd.Item().Quantity(),
		cmd.Item().UnitPrice(),
	)
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
