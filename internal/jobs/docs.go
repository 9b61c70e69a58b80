// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ArchiveCompletedOrdersJob - Runs nightly to sweep completed orders into
// the archive, keeping the active board small for the kitchen views.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(archiveCompletedHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The archive job runs at 03:00 every night. The POST /archive endpoint
// remains the on-demand path for the same sweep.
package jobs
