package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/notificationrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// QueriesIntegrationTestSuite reads projections written by the repositories
// from a real PostgreSQL.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	database      *pgtest.Database
	orders        *orderrepo.GormOrderRepository
	notifications *notificationrepo.GormNotificationRepository

	customerID kernel.UUID
	customer   actor.Actor
	operator   actor.Actor
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.orders = orderrepo.NewGormOrderRepository(database.DB, noopTracker{})
	suite.notifications = notificationrepo.NewGormNotificationRepository(database.DB, noopTracker{})
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	var err error
	suite.customerID = kernel.NewUUID()
	suite.customer, err = actor.NewActor(suite.customerID, actor.Customer)
	suite.Require().NoError(err)
	suite.operator, err = actor.NewActor(kernel.NewUUID(), actor.Operator)
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) window(date, slot string) kernel.DeliveryWindow {
	w, err := kernel.ParseDeliveryWindow(date, slot)
	suite.Require().NoError(err)
	return w
}

func (suite *QueriesIntegrationTestSuite) addOrder(customerID kernel.UUID, createdAt time.Time) *order.Order {
	milk, err := order.NewItem("Milk", 2, "")
	suite.Require().NoError(err)
	bread, err := order.NewItem("Bread", 1, "sliced")
	suite.Require().NoError(err)

	addressID := kernel.NewUUID()
	id := kernel.NewUUID()
	o, err := order.NewOrder(
		id,
		order.NewOrderNumber(id, createdAt),
		customerID,
		suite.window("2024-06-01", "morning"),
		order.Details{AddressID: &addressID, Store: "Central", Instructions: "Ring twice", Items: []order.Item{milk, bread}},
		createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReturnsNegotiationState() {
	ctx := context.Background()
	o := suite.addOrder(suite.customerID, time.Now().UTC())

	suggested := suite.window("2024-06-02", "evening")
	suite.Require().NoError(o.ProposeDate(suite.operator.ID(), suggested))
	suite.Require().NoError(suite.orders.Update(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID(), suite.customer)
	suite.Require().NoError(err)

	projection, err := queries.NewGetOrderQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), projection.ID)
	suite.Equal(o.Number(), projection.Number)
	suite.Equal(order.PendingCustomerReview, projection.Status)
	suite.True(projection.Desired.IsEqual(o.DesiredWindow()))
	suite.Require().NotNil(projection.Suggested)
	suite.True(projection.Suggested.IsEqual(suggested))
	suite.Nil(projection.Final)
	suite.False(projection.IsLocked)
	suite.Require().NotNil(projection.OperatorID)
	suite.Equal(suite.operator.ID(), *projection.OperatorID)
	suite.Require().NotNil(projection.AddressID)
	suite.Equal("Central", projection.Store)
	suite.Equal(int64(2), projection.Version)
	suite.Equal([]queries.ItemView{
		{ProductName: "Milk", Quantity: 2, Note: ""},
		{ProductName: "Bread", Quantity: 1, Note: "sliced"},
	}, projection.Items)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ForcedDateIsFinalAndLocked() {
	ctx := context.Background()
	o := suite.addOrder(suite.customerID, time.Now().UTC())
	forced := suite.window("2024-06-03", "afternoon")
	suite.Require().NoError(o.ForceDate(suite.operator.ID(), forced))
	suite.Require().NoError(suite.orders.Update(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID(), suite.operator)
	suite.Require().NoError(err)

	projection, err := queries.NewGetOrderQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(order.DateForced, projection.Status)
	suite.Require().NotNil(projection.Final)
	suite.True(projection.Final.IsEqual(forced))
	suite.Nil(projection.Suggested)
	suite.True(projection.IsLocked)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_Errors() {
	ctx := context.Background()
	handler := queries.NewGetOrderQueryHandler(suite.database.DB)
	o := suite.addOrder(suite.customerID, time.Now().UTC())

	stranger, err := actor.NewActor(kernel.NewUUID(), actor.Customer)
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderQuery(o.ID(), stranger)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrForbidden)

	query, err = queries.NewGetOrderQuery(kernel.NewUUID(), suite.operator)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_ScopedByRoleAndStatus() {
	ctx := context.Background()
	handler := queries.NewListOrdersQueryHandler(suite.database.DB)
	base := time.Now().UTC().Add(-time.Hour)

	older := suite.addOrder(suite.customerID, base)
	newer := suite.addOrder(suite.customerID, base.Add(time.Minute))
	foreign := suite.addOrder(kernel.NewUUID(), base.Add(2*time.Minute))

	suite.Require().NoError(older.StartProcessing(suite.operator.ID()))
	suite.Require().NoError(suite.orders.Update(ctx, older))

	query, err := queries.NewListOrdersQuery(suite.customer, nil, 0, 0)
	suite.Require().NoError(err)
	mine, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(mine, 2)
	suite.Equal(newer.ID(), mine[0].ID)
	suite.Equal(older.ID(), mine[1].ID)

	query, err = queries.NewListOrdersQuery(suite.operator, nil, 0, 0)
	suite.Require().NoError(err)
	all, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(foreign.ID(), all[0].ID)

	processing := order.Processing
	query, err = queries.NewListOrdersQuery(suite.operator, &processing, 10, 0)
	suite.Require().NoError(err)
	filtered, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(filtered, 1)
	suite.Equal(older.ID(), filtered[0].ID)

	query, err = queries.NewListOrdersQuery(suite.operator, nil, 1, 1)
	suite.Require().NoError(err)
	paged, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(paged, 1)
	suite.Equal(newer.ID(), paged[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestNotifications_ListAndCount() {
	ctx := context.Background()
	o := suite.addOrder(suite.customerID, time.Now().UTC())
	base := time.Now().UTC().Add(-time.Hour)

	var stored []*notification.Notification
	for i, typ := range []notification.Type{notification.DateChangeRequest, notification.FinalDateSet, notification.OrderLocked} {
		orderID := o.ID()
		n, err := notification.NewNotification(
			kernel.NewUUID(), suite.customerID, typ, typ.String(), suite.operator.ID(), &orderID,
			base.Add(time.Duration(i)*time.Minute),
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.notifications.Add(ctx, n))
		stored = append(stored, n)
	}

	other, err := notification.NewNotification(
		kernel.NewUUID(), kernel.NewUUID(), notification.NewOrder, "other inbox", suite.customerID, nil, base,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.notifications.Add(ctx, other))

	suite.Require().NoError(suite.notifications.MarkRead(ctx, stored[0].ID()))

	list := queries.NewListNotificationsQueryHandler(suite.database.DB)
	count := queries.NewCountUnreadNotificationsQueryHandler(suite.database.DB)

	query, err := queries.NewListNotificationsQuery(suite.customerID, false, 0, 0)
	suite.Require().NoError(err)
	views, err := list.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(views, 3)
	suite.Equal(notification.OrderLocked, views[0].Type)
	suite.Equal(stored[2].ID(), views[0].ID)
	suite.Require().NotNil(views[0].OrderID)
	suite.Equal(o.ID(), *views[0].OrderID)
	suite.Equal(suite.operator.ID(), views[0].TriggeredBy)
	suite.True(views[2].IsRead)

	query, err = queries.NewListNotificationsQuery(suite.customerID, true, 0, 0)
	suite.Require().NoError(err)
	unread, err := list.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(unread, 2)

	countQuery, err := queries.NewCountUnreadNotificationsQuery(suite.customerID)
	suite.Require().NoError(err)
	total, err := count.Handle(ctx, countQuery)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
