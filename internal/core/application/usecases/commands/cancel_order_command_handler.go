package commands

import (
	"context"
	"errors"
	"time"

	"orders/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the Draft to Cancelled transition.
// Like confirmation, expected business outcomes travel as an
// OrderActionResult value rather than an error.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Returns ActionNotFound when the order does not exist and ActionInvalidState
// when the order is not in Draft status, both with a nil error. Cancelled is
// terminal, so cancelling twice also yields ActionInvalidState.
func (h *CancelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderCommand,
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

	if err = aggregate.Cancel(time.Now().UTC()); err != nil {
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
