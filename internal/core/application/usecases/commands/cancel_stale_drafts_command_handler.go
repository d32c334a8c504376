package commands

import (
	"context"
	"errors"
	"time"

	"orders/internal/pkg/errs"
)

// CancelStaleDraftsCommandHandler cancels Draft orders abandoned for longer
// than the command's TTL. Intended to run periodically from the scheduler.
//
// Example:
//
//	handler := NewCancelStaleDraftsCommandHandler(uowFactory)
//	cmd, _ := NewCancelStaleDraftsCommand(24 * time.Hour)
//
//	cancelled, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("draft expiry failed: %w", err)
//	}
//	slog.Info("expired stale drafts", "count", cancelled)
type CancelStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleDraftsCommandHandler creates a handler for draft expiry.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleDraftsCommandHandler(uowFactory OrderUoWFactory) CancelStaleDraftsCommandHandler {
	return CancelStaleDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every Draft last updated before now minus the TTL and
// returns how many orders were cancelled. An order that a concurrent writer
// revised between the read and the save is skipped; the next run picks it up
// again if it is still a stale draft.
func (h *CancelStaleDraftsCommandHandler) Handle(
	ctx context.Context,
	cmd CancelStaleDraftsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	orderRepo := uow.OrderRepository()

	drafts, err := orderRepo.GetAllDraftsUpdatedBefore(ctx, now.Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, draft := range drafts {
		if err = draft.Cancel(now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, draft); err != nil {
			if errors.Is(err, errs.ErrConcurrencyConflict) {
				continue
			}
			return 0, err
		}

		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
