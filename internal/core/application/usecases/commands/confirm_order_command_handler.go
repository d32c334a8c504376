package commands

import (
	"context"
	"errors"
	"time"

	"orders/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles the Draft to Confirmed transition.
// Expected business outcomes (missing order, wrong lifecycle status) are
// reported as an OrderActionResult value; the error channel carries only
// infrastructure failures.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory)
//	cmd, _ := NewConfirmOrderCommand(orderID)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("confirm failed: %w", err)
//	}
//	switch result {
//	case ActionNotFound:
//	    // respond 404
//	case ActionInvalidState:
//	    // respond 409
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// Requires an OrderUoWFactory for transactional persistence.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Returns ActionNotFound when the order does not exist and ActionInvalidState
// when the order is not in Draft status, both with a nil error.
func (h *ConfirmOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmOrderCommand,
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

	if err = aggregate.Confirm(time.Now().UTC()); err != nil {
		if errors.Is(err, errs.ErrInvalidState) {
			return ActionInvalidState, nil
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
