// Package logsink is the notification publisher used when no broker is
// configured: every notification is written to the structured log.
package logsink

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/notification"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "notification_log_sink")}
}

func (p *Publisher) Publish(ctx context.Context, n *notification.Notification) error {
	attrs := []any{
		"notification_id", n.ID().String(),
		"user_id", n.UserID().String(),
		"type", n.Type().String(),
		"triggered_by", n.TriggeredBy().String(),
		"message", n.Message(),
	}
	if orderID := n.OrderID(); orderID != nil {
		attrs = append(attrs, "order_id", orderID.String())
	}

	p.logger.InfoContext(ctx, "notification", attrs...)
	return nil
}
