package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
)

// NotificationPublisher hands a stored notification to the delivery channel.
// Delivery is at-least-once: the relay job republishes anything not marked
// delivered, so consumers must deduplicate by notification ID.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *notification.Notification) error
}

// OperatorDirectory lists the operators that receive notifications not yet bound
// to a specific operator.
type OperatorDirectory interface {
	Operators(ctx context.Context) ([]kernel.UUID, error)
}
