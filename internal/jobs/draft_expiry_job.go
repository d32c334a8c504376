package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DraftExpiryJob manages the scheduled cancellation of abandoned Draft orders.
// Runs every minute and cancels drafts untouched for longer than the TTL.
type DraftExpiryJob struct {
	handler commands.CancelStaleDraftsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDraftExpiryJob creates a new job for expiring stale drafts.
// Uses CancelStaleDraftsCommandHandler to cancel drafts older than the TTL.
func NewDraftExpiryJob(
	handler commands.CancelStaleDraftsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *DraftExpiryJob {
	return &DraftExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "draft_expiry_job"),
	}
}

// Start begins the draft expiry job to run every minute.
func (j *DraftExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleDraftsCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Draft expiry job misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Draft expiry job failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale draft orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft expiry job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the draft expiry job.
func (j *DraftExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft expiry job stopped")
}
