package commands

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/metrics"
)

// NotificationOutbox turns engine intents into stored notifications inside the
// caller's transaction and delivers them once that transaction committed.
type NotificationOutbox struct {
	uowFactory UoWFactory
	directory  ports.OperatorDirectory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
	now        func() time.Time
}

func NewNotificationOutbox(
	uowFactory UoWFactory,
	directory ports.OperatorDirectory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *NotificationOutbox {
	return &NotificationOutbox{
		uowFactory: uowFactory,
		directory:  directory,
		publisher:  publisher,
		logger:     logger.With("component", "notification_outbox"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Stage creates one notification per recipient and adds it through repo. An
// intent without recipient goes to every operator in the directory.
func (o *NotificationOutbox) Stage(
	ctx context.Context,
	repo ports.NotificationRepository,
	orderID kernel.UUID,
	intents []services.Intent,
) ([]*notification.Notification, error) {
	var (
		operators []kernel.UUID
		staged    []*notification.Notification
		createdAt = o.now()
	)

	for _, intent := range intents {
		recipients := make([]kernel.UUID, 0, 1)
		if intent.Recipient != nil {
			recipients = append(recipients, *intent.Recipient)
		} else {
			if operators == nil {
				list, err := o.directory.Operators(ctx)
				if err != nil {
					return nil, err
				}
				operators = list
			}
			recipients = append(recipients, operators...)
		}

		if len(recipients) == 0 {
			o.logger.WarnContext(ctx, "no recipient for notification",
				"order_id", orderID.String(), "type", intent.Type.String())
			continue
		}

		for _, recipient := range recipients {
			n, err := notification.NewNotification(
				kernel.NewUUID(), recipient, intent.Type, intent.Message, intent.TriggeredBy, &orderID, createdAt,
			)
			if err != nil {
				return nil, err
			}
			if err = repo.Add(ctx, n); err != nil {
				return nil, err
			}
			staged = append(staged, n)
		}
	}

	return staged, nil
}

// Deliver publishes the notifications and stores the delivery marks of the ones
// the publisher accepted. Failures are logged and left for the relay job; Deliver
// never fails the operation that produced the notifications.
func (o *NotificationOutbox) Deliver(ctx context.Context, notifications []*notification.Notification) int {
	if len(notifications) == 0 {
		return 0
	}

	delivered := make([]*notification.Notification, 0, len(notifications))
	for _, n := range notifications {
		err := o.publisher.Publish(ctx, n)
		metrics.RecordPublish(n.Type().String(), err == nil)
		if err != nil {
			o.logger.WarnContext(ctx, "failed to publish notification",
				"notification_id", n.ID().String(), "type", n.Type().String(), "error", err)
			continue
		}
		n.MarkDelivered(o.now())
		delivered = append(delivered, n)
	}

	if len(delivered) == 0 {
		return 0
	}

	if err := o.markDelivered(ctx, delivered); err != nil {
		o.logger.WarnContext(ctx, "failed to store delivery marks", "count", len(delivered), "error", err)
	}
	return len(delivered)
}

func (o *NotificationOutbox) markDelivered(ctx context.Context, delivered []*notification.Notification) error {
	uow := o.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	for _, n := range delivered {
		if err := repo.MarkDelivered(ctx, n.ID(), *n.DeliveredAt()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
