// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// (with a seconds field) for the housekeeping of the notification outbox.
//
// # Available Jobs
//
// 1. NotificationRelayJob - republishes notifications whose publish failed after commit
// 2. NotificationPurgeJob - deletes read notifications older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	relay := jobs.NewNotificationRelayJob(relayHandler, "*/30 * * * * *", 100, logger)
//	purge := jobs.NewNotificationPurgeJob(purgeHandler, "0 0 3 * * *", 30*24*time.Hour, logger)
//	jobManager := jobs.NewJobManager(relay, purge)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Failed runs are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
