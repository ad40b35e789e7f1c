// Package jobs provides scheduled background tasks for the loading engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ArchiveSweepJob - Runs once per day at a configured wall-clock time to
// move completed loadings from the active registry to the archive.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(archiveHandler, 23, 30, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep logs failures and retries on the next scheduled firing; a
// per-day marker prevents a second sweep on the same civil date.
package jobs
