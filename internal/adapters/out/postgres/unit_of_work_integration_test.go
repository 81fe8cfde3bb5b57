package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite verifies that order writes and notification
// writes share one transaction.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.NotificationRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderAndNotificationsCommitTogether() {
	ctx := context.Background()
	o := suite.createTestOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	operatorID := kernel.NewUUID()
	suite.Require().NoError(o.ForceDate(operatorID, suite.window("2024-06-03", "evening")))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	n := suite.createNotification(o, operatorID)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))

	suite.Equal(2, uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.DateForced, stored.Status())

	_, err = suite.factory.Create().NotificationRepository().Get(ctx, n.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsBoth() {
	ctx := context.Background()
	o := suite.createTestOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	operatorID := kernel.NewUUID()
	suite.Require().NoError(o.Lock(operatorID))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	n := suite.createNotification(o, operatorID)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))
	suite.Require().NoError(uow.Rollback(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(stored.IsLocked())
	suite.Equal(int64(1), stored.Version())

	_, err = suite.factory.Create().NotificationRepository().Get(ctx, n.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentWritersOneWins() {
	ctx := context.Background()
	o := suite.createTestOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	first := suite.factory.Create()
	second := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(second.Begin(ctx))

	a, err := first.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	b, err := second.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(a.Lock(kernel.NewUUID()))
	suite.Require().NoError(first.OrderRepository().Update(ctx, a))
	suite.Require().NoError(first.Commit(ctx))

	suite.Require().NoError(b.Cancel())
	err = second.OrderRepository().Update(ctx, b)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
	suite.Require().NoError(second.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewItem("Coffee", 2, "")
	suite.Require().NoError(err)

	id := kernel.NewUUID()
	createdAt := time.Date(2024, time.May, 30, 10, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(id, order.NewOrderNumber(id, createdAt), kernel.NewUUID(),
		suite.window("2024-06-01", "morning"), order.Details{Items: []order.Item{item}}, createdAt)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) createNotification(o *order.Order, by kernel.UUID) *notification.Notification {
	orderID := o.ID()
	n, err := notification.NewNotification(kernel.NewUUID(), o.CustomerID(), notification.FinalDateSet,
		"Order changed.", by, &orderID, time.Now().UTC())
	suite.Require().NoError(err)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) window(date, slot string) kernel.DeliveryWindow {
	w, err := kernel.ParseDeliveryWindow(date, slot)
	suite.Require().NoError(err)
	return w
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
