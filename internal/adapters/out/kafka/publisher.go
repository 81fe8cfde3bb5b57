// Package kafka publishes stored notifications to a Kafka topic for the UI
// delivery service.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/notification"

	"github.com/IBM/sarama"
)

// Message is the wire form of a notification. Consumers deduplicate by ID since
// the relay may publish a notification more than once.
type Message struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	TriggeredBy string    `json:"triggered_by"`
	OrderID     *string   `json:"order_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewMessage maps a notification onto its wire form.
func NewMessage(n *notification.Notification) Message {
	m := Message{
		ID:          n.ID().String(),
		UserID:      n.UserID().String(),
		Type:        n.Type().String(),
		Message:     n.Message(),
		TriggeredBy: n.TriggeredBy().String(),
		CreatedAt:   n.CreatedAt(),
	}
	if orderID := n.OrderID(); orderID != nil {
		s := orderID.String()
		m.OrderID = &s
	}
	return m
}

// Publisher implements ports.NotificationPublisher on a sarama SyncProducer.
// Messages are keyed by recipient so one user's notifications stay ordered
// within a partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher"),
	}
}

// NewSyncProducer connects a producer that waits for the broker acknowledgement.
func NewSyncProducer(brokers []string, timeout time.Duration) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Timeout = timeout
	config.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(brokers, config)
}

// Publish sends one notification and waits for the acknowledgement.
func (p *Publisher) Publish(ctx context.Context, n *notification.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(NewMessage(n))
	if err != nil {
		return fmt.Errorf("encode notification %s: %w", n.ID(), err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(n.UserID().String()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("notification-type"), Value: []byte(n.Type().String())},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send notification %s to %s: %w", n.ID(), p.topic, err)
	}

	p.logger.DebugContext(ctx, "notification published",
		"notification_id", n.ID().String(), "topic", p.topic, "partition", partition, "offset", offset)
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
