package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkDelivered(ctx context.Context, id kernel.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*notification.Notification); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetUndelivered(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if list, ok := args.Get(0).([]*notification.Notification); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) Operators(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]kernel.UUID); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

var createdAt = time.Date(2024, time.May, 28, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noWait() commands.RetryPolicy {
	return commands.RetryPolicy{MaxAttempts: commands.DefaultMaxAttempts}
}

func window(t *testing.T, date, slot string) kernel.DeliveryWindow {
	t.Helper()
	w, err := kernel.ParseDeliveryWindow(date, slot)
	require.NoError(t, err)
	return w
}

func newActor(t *testing.T, id kernel.UUID, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func newOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem("Apples", 3, "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-20240528-AAAAAA",
		customerID,
		window(t, "2024-06-01", "morning"),
		order.Details{Items: []order.Item{item}},
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func newNotification(t *testing.T, userID kernel.UUID) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(
		kernel.NewUUID(), userID, notification.DateChangeRequest, "New delivery date proposed.",
		kernel.NewUUID(), nil, createdAt,
	)
	require.NoError(t, err)
	return n
}

// outboxFixture wires an outbox to mocks. The publisher and directory carry no
// expectations until a test adds them.
type outboxFixture struct {
	factory   *MockUoWFactory
	publisher *MockPublisher
	directory *MockDirectory
	outbox    *commands.NotificationOutbox
}

func newOutboxFixture() outboxFixture {
	f := outboxFixture{
		factory:   new(MockUoWFactory),
		publisher: new(MockPublisher),
		directory: new(MockDirectory),
	}
	f.outbox = commands.NewNotificationOutbox(f.factory, f.directory, f.publisher, discardLogger())
	return f
}

func (f outboxFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.factory.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
	f.directory.AssertExpectations(t)
}
