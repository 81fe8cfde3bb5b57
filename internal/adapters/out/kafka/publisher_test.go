package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/adapters/out/kafka"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotification(t *testing.T) *notification.Notification {
	t.Helper()
	orderID := kernel.NewUUID()
	n, err := notification.NewNotification(
		kernel.NewUUID(), kernel.NewUUID(), notification.FinalDateSet,
		"Order ORD-20240601-ABCDEF: delivery is scheduled for 2024-06-03 evening.",
		kernel.NewUUID(), &orderID, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return n
}

func TestPublisher_Publish(t *testing.T) {
	n := newNotification(t)

	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != n.UserID().String() {
			return errors.New("message must be keyed by recipient")
		}
		return nil
	})
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var m kafka.Message
		if err := json.Unmarshal(value, &m); err != nil {
			return err
		}
		if m.ID != n.ID().String() || m.Type != "final_date_set" || m.OrderID == nil {
			return errors.New("unexpected payload")
		}
		return nil
	})

	publisher := kafka.NewPublisher(producer, "order-notifications", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, publisher.Publish(context.Background(), n))
	require.NoError(t, publisher.Publish(context.Background(), n))
	require.NoError(t, publisher.Close())
}

func TestPublisher_Publish_BrokerError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := kafka.NewPublisher(producer, "order-notifications", slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.Publish(context.Background(), newNotification(t))
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestPublisher_Publish_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	publisher := kafka.NewPublisher(producer, "order-notifications", slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, publisher.Publish(ctx, newNotification(t)), context.Canceled)
	require.NoError(t, publisher.Close())
}

func TestNewMessage_WithoutOrder(t *testing.T) {
	n, err := notification.NewNotification(
		kernel.NewUUID(), kernel.NewUUID(), notification.NewOrder, "hello", kernel.NewUUID(), nil, time.Now(),
	)
	require.NoError(t, err)

	m := kafka.NewMessage(n)
	assert.Nil(t, m.OrderID)
	assert.Equal(t, "new_order", m.Type)
}
