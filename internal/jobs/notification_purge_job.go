package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReadNotificationPurger deletes read notifications past their retention.
type ReadNotificationPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeReadNotificationsCommand) (int64, error)
}

// NotificationPurgeJob keeps the inbox table small by deleting notifications
// their recipient has read more than retention ago.
type NotificationPurgeJob struct {
	handler   ReadNotificationPurger
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewNotificationPurgeJob(
	handler ReadNotificationPurger,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *NotificationPurgeJob {
	return &NotificationPurgeJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_purge_job"),
	}
}

// Start registers the purge and starts the scheduler.
func (j *NotificationPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification purge job started",
		"schedule", j.schedule, "retention", j.retention)
	return nil
}

// RunOnce performs a single purge and reports how many rows were removed.
func (j *NotificationPurgeJob) RunOnce(ctx context.Context) (int64, error) {
	cmd, err := commands.NewPurgeReadNotificationsCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification purge job misconfigured", "error", err)
		return 0, err
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification purge job failed", "error", err)
		return 0, err
	}
	return removed, nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *NotificationPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification purge job stopped")
}
