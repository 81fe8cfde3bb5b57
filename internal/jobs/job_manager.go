package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	relayJob *NotificationRelayJob
	purgeJob *NotificationPurgeJob
}

// NewJobManager creates a job manager over the given jobs.
func NewJobManager(relayJob *NotificationRelayJob, purgeJob *NotificationPurgeJob) *JobManager {
	return &JobManager{
		relayJob: relayJob,
		purgeJob: purgeJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.relayJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification relay job: %w", err)
	}

	if err := jm.purgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.relayJob.Stop()
		return fmt.Errorf("failed to start notification purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.purgeJob.Stop()
	jm.relayJob.Stop()
}
