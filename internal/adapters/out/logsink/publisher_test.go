package logsink_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/adapters/out/logsink"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	publisher := logsink.NewPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	orderID := kernel.NewUUID()
	n, err := notification.NewNotification(
		kernel.NewUUID(), kernel.NewUUID(), notification.OrderUnlocked, "Order ORD-1 is unlocked.",
		kernel.NewUUID(), &orderID, time.Now(),
	)
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), n))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "notification", record["msg"])
	assert.Equal(t, "notification_log_sink", record["component"])
	assert.Equal(t, "order_unlocked", record["type"])
	assert.Equal(t, n.UserID().String(), record["user_id"])
	assert.Equal(t, orderID.String(), record["order_id"])
}
