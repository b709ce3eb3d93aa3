// Package jobs provides scheduled background tasks for the order workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order book.
//
// # Available Jobs
//
// 1. OverdueWatchJob - Runs every minute to report orders past their due date
// that have not reached a terminal state
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOverdueOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The watch uses the cron expression "0 * * * * *", firing at the top of
// every minute. Due dates carry day precision.
//
// # Error Handling
//
// The watch job never mutates orders; failures are logged and the next run
// starts fresh. Overdue orders are reported at warning level, one line per
// order.
package jobs
