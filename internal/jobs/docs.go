// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OccupancyReportJob - Runs daily at 06:00 to log next week's per-day
// occupancy (orders, units, limit) before production starts.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(calendarSummaryHandler, logger, time.Now)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job logs query failures and skips the run; a failed report is
// never fatal to the service.
package jobs
