// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the quoting service.
//
// # Available Jobs
//
// 1. QuotePurgeJob - Runs every five minutes to delete quote snapshots whose
// validity window has ended
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, logger)
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
// The purge job uses the cron expression "0 */5 * * * *" which means it runs
// at the top of every fifth minute. Quotes stay valid for thirty minutes, so
// an expired batch survives at most one extra purge interval.
//
// # Error Handling
//
// - Purge failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
