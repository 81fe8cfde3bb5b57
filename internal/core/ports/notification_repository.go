package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
// Notifications are the outbox of the negotiation: they are written in the same
// transaction as the order change and delivered afterwards.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// MarkRead sets the read flag and nothing else.
	MarkRead(ctx context.Context, id kernel.UUID) error

	// MarkDelivered records the first successful publish. A notification that
	// already carries a delivery mark keeps it.
	MarkDelivered(ctx context.Context, id kernel.UUID, at time.Time) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// Delete removes a notification.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetUndelivered returns up to limit notifications no publisher has accepted
	// yet, oldest first.
	GetUndelivered(ctx context.Context, limit int) ([]*notification.Notification, error)

	// DeleteReadBefore removes read notifications created before the cutoff and
	// returns how many were removed.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
