package commands

import (
	"context"
	"errors"
	"time"

	"orders/internal/pkg/errs"
)

// RemoveItemCommandHandler handles deleting a line item from a Draft order.
// A missing order and a missing item both map to ActionNotFound; the caller
// cannot distinguish them and does not need to.
type RemoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for item removal operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRemoveItemCommandHandler(uowFactory OrderUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item removal command.
// Returns ActionNotFound when the order or the item does not exist and
// ActionInvalidState when the order is not in Draft status, both with a nil
// error. Removing the last item leaves a valid empty Draft with a zero total.
func (h *RemoveItemCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveItemCommand,
) (OrderActionResult, error) {
	if err := cmd.Validate(); err != nil {
		return ActionUnknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ActionUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ActionNotFound, nil
		}
		return ActionUnknown, err
	}

	if err = aggregate.RemoveItem(cmd.ItemID(), time.Now().UTC()); err != nil {
		if errors.Is(err, errs.ErrInvalidState) {
			return ActionInvalidState, nil
		}
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ActionNotFound, nil
		}
		return ActionUnknown, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ActionUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ActionUnknown, err
	}

	return ActionSuccess, nil
}
