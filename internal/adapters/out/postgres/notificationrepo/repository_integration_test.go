package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/notificationrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *notificationrepo.GormNotificationRepository
	base       time.Time
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.base = time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.database.DB, noopTracker{})
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAddAndGet_WithOrder() {
	ctx := context.Background()
	o := suite.storedOrder()
	orderID := o.ID()
	n := suite.newNotification(kernel.NewUUID(), notification.FinalDateSet, &orderID, suite.base)

	suite.Require().NoError(suite.repository.Add(ctx, n))

	got, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.Equal(n.Snapshot().Message, got.Message())
	suite.Equal(notification.FinalDateSet, got.Type())
	suite.True(got.OrderID().IsEqual(orderID))
	suite.True(got.CreatedAt().Equal(suite.base))
	suite.False(got.IsRead())
	suite.False(got.IsDelivered())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkRead_KeepsDeliveryMark() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	n := suite.newNotification(userID, notification.OrderLocked, nil, suite.base)
	suite.Require().NoError(suite.repository.Add(ctx, n))

	// A relay loaded n before the recipient read it and publishes afterwards.
	suite.Require().NoError(suite.repository.MarkRead(ctx, n.ID()))
	suite.Require().NoError(suite.repository.MarkDelivered(ctx, n.ID(), suite.base.Add(time.Second)))

	got, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.True(got.IsRead())
	suite.Require().NotNil(got.DeliveredAt())
	suite.True(got.DeliveredAt().Equal(suite.base.Add(time.Second)))

	// Reading again must not clear the delivery mark either.
	suite.Require().NoError(suite.repository.MarkRead(ctx, n.ID()))
	got, err = suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.True(got.IsDelivered())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkDelivered_FirstMarkWins() {
	ctx := context.Background()
	n := suite.newNotification(kernel.NewUUID(), notification.DateAccepted, nil, suite.base)
	suite.Require().NoError(suite.repository.Add(ctx, n))

	suite.Require().NoError(suite.repository.MarkDelivered(ctx, n.ID(), suite.base.Add(time.Second)))
	suite.Require().NoError(suite.repository.MarkDelivered(ctx, n.ID(), suite.base.Add(time.Minute)))

	got, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.False(got.IsRead())
	suite.Require().NotNil(got.DeliveredAt())
	suite.True(got.DeliveredAt().Equal(suite.base.Add(time.Second)))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkRead_Missing_ReturnsNotFound() {
	err := suite.repository.MarkRead(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	n := suite.newNotification(kernel.NewUUID(), notification.NewOrder, nil, suite.base)
	suite.Require().NoError(suite.repository.Add(ctx, n))

	suite.Require().NoError(suite.repository.Delete(ctx, n.ID()))
	suite.Require().ErrorIs(suite.repository.Delete(ctx, n.ID()), errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetUndelivered_OldestFirstWithLimit() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	delivered := suite.newNotification(userID, notification.NewOrder, nil, suite.base)
	delivered.MarkDelivered(suite.base)
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	newest := suite.newNotification(userID, notification.NewOrder, nil, suite.base.Add(3*time.Minute))
	oldest := suite.newNotification(userID, notification.NewOrder, nil, suite.base.Add(time.Minute))
	middle := suite.newNotification(userID, notification.NewOrder, nil, suite.base.Add(2*time.Minute))
	for _, n := range []*notification.Notification{newest, oldest, middle} {
		suite.Require().NoError(suite.repository.Add(ctx, n))
	}

	got, err := suite.repository.GetUndelivered(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].ID().IsEqual(oldest.ID()))
	suite.True(got[1].ID().IsEqual(middle.ID()))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestDeleteReadBefore() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	cutoff := suite.base.Add(time.Hour)

	oldRead := suite.newNotification(userID, notification.DateAccepted, nil, suite.base)
	suite.Require().NoError(oldRead.MarkRead(userID))
	oldUnread := suite.newNotification(userID, notification.DateAccepted, nil, suite.base)
	newRead := suite.newNotification(userID, notification.DateAccepted, nil, cutoff.Add(time.Minute))
	suite.Require().NoError(newRead.MarkRead(userID))

	for _, n := range []*notification.Notification{oldRead, oldUnread, newRead} {
		suite.Require().NoError(suite.repository.Add(ctx, n))
	}

	removed, err := suite.repository.DeleteReadBefore(ctx, cutoff)

	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)
	_, err = suite.repository.Get(ctx, oldRead.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.Get(ctx, oldUnread.ID())
	suite.Require().NoError(err)
}

func (suite *NotificationRepositoryIntegrationTestSuite) newNotification(
	userID kernel.UUID,
	typ notification.Type,
	orderID *kernel.UUID,
	createdAt time.Time,
) *notification.Notification {
	n, err := notification.NewNotification(kernel.NewUUID(), userID, typ, "Order ORD-1 changed.", kernel.NewUUID(), orderID, createdAt)
	suite.Require().NoError(err)
	return n
}

func (suite *NotificationRepositoryIntegrationTestSuite) storedOrder() *order.Order {
	item, err := order.NewItem("Tea", 1, "")
	suite.Require().NoError(err)
	w, err := kernel.ParseDeliveryWindow("2024-06-04", "afternoon")
	suite.Require().NoError(err)

	id := kernel.NewUUID()
	o, err := order.NewOrder(id, order.NewOrderNumber(id, suite.base), kernel.NewUUID(), w,
		order.Details{Items: []order.Item{item}}, suite.base)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.database.DB, noopTracker{}).Add(context.Background(), o))
	return o
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
