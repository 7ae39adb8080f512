// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. ReconciliationSweepJob - Periodically compares canonical orders with
// their fulfillment mirror records and flags divergences for operators.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, "*/5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep job logs failures and continues on the next tick; a failed run
// never aborts the schedule. Divergences found during a sweep are recorded
// as reconciliation flags, not treated as errors.
package jobs
