// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. DraftExpiryJob - Runs every minute to cancel Draft orders that have been
// abandoned for longer than the configured time-to-live.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleDraftsHandler, draftTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job logs failures and carries on; a draft that a concurrent
// writer touched between the read and the save is skipped and picked up by
// a later run if it is still stale.
package jobs
