// Package jobs provides scheduled background tasks for the parcel back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the logistics workflow.
//
// # Available Jobs
//
// 1. DailyReportJob - Runs every morning at 06:00 to log the previous day's dispatch summary
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchSummaryHandler, logger)
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
// The report job uses the cron expression "0 6 * * *" so each run covers a
// complete calendar day in UTC.
//
// # Error Handling
//
// - Report job logs query failures and carries on; a missed report does not affect operations
// - Failed job starts stop any already running jobs
package jobs
