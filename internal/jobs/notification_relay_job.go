package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationRelayer republishes notifications that were stored but never
// delivered.
type NotificationRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayNotificationsCommand) (int, error)
}

// NotificationRelayJob sweeps the notification outbox on a schedule. It catches
// notifications whose publish failed after their transaction committed.
type NotificationRelayJob struct {
	handler   NotificationRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRelayJob creates the relay job. schedule is a cron expression
// with a leading seconds field, e.g. "*/30 * * * * *".
func NewNotificationRelayJob(
	handler NotificationRelayer,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_relay_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *NotificationRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single sweep and reports how many notifications went out.
func (j *NotificationRelayJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewRelayNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay job misconfigured", "error", err)
		return 0, err
	}

	delivered, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay job failed", "error", err)
		return delivered, err
	}
	if delivered > 0 {
		j.logger.InfoContext(ctx, "Relayed pending notifications", "delivered", delivered)
	}
	return delivered, nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *NotificationRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
