package http

import (
	"context"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// The use cases the server drives. The command and query handlers of the
// application layer satisfy them.
type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (queries.OrderProjection, error)
	}
	Negotiator interface {
		Handle(ctx context.Context, cmd commands.NegotiateCommand) (queries.OrderProjection, error)
	}
	ItemsEditor interface {
		Handle(ctx context.Context, cmd commands.EditOrderItemsCommand) (queries.OrderProjection, error)
	}
	NotificationReader interface {
		Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) error
	}
	NotificationDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteNotificationCommand) error
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderProjection, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderProjection, error)
	}
	NotificationLister interface {
		Handle(ctx context.Context, query queries.ListNotificationsQuery) ([]queries.NotificationView, error)
	}
	UnreadCounter interface {
		Handle(ctx context.Context, query queries.CountUnreadNotificationsQuery) (int64, error)
	}
)

// Handlers groups the use cases behind the API.
type Handlers struct {
	CreateOrder       OrderCreator
	Negotiate         Negotiator
	EditItems         ItemsEditor
	MarkRead          NotificationReader
	DeleteNotif       NotificationDeleter
	GetOrder          OrderGetter
	ListOrders        OrderLister
	ListNotifications NotificationLister
	CountUnread       UnreadCounter
}

// Server implements servers.ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

var _ servers.ServerInterface = (*Server)(nil)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var status *order.Status
	if params.Status != nil {
		parsed, parseErr := order.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(a, status, deref(params.Limit), deref(params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}

	projections, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, 0, len(projections))
	for _, p := range projections {
		response = append(response, toOrder(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewOrder
	if err = bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	desired, err := fromWindow(body.DesiredWindow)
	if err != nil {
		return s.fail(ctx, err)
	}

	input := commands.OrderInput{
		Store:        deref(body.Store),
		Instructions: deref(body.Instructions),
		Items:        fromItems(body.Items),
	}
	if body.AddressId != nil {
		addressID, idErr := fromID(*body.AddressId)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		input.AddressID = &addressID
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), a, desired, input)
	if err != nil {
		return s.fail(ctx, err)
	}

	projection, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+projection.ID.String())
	return ctx.JSON(http.StatusCreated, toOrder(projection))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := fromID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id, a)
	if err != nil {
		return s.fail(ctx, err)
	}

	projection, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(projection))
}

// StartProcessing handles POST /api/v1/orders/{orderId}/processing.
func (s *Server) StartProcessing(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.negotiate(ctx, orderId, func(actor.Actor) order.Action { return order.StartProcessing }, nil)
}

// ProposeDate handles POST /api/v1/orders/{orderId}/date-proposals. Operators
// propose, customers answer a proposal with a counter-proposal.
func (s *Server) ProposeDate(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.DeliveryWindow
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	return s.negotiate(ctx, orderId, func(a actor.Actor) order.Action {
		if a.IsOperator() {
			return order.ProposeDate
		}
		return order.CounterPropose
	}, &body)
}

// AcceptDate handles POST /api/v1/orders/{orderId}/date-acceptance. Customers
// accept an operator's suggestion, operators accept a customer's counter.
func (s *Server) AcceptDate(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.negotiate(ctx, orderId, func(a actor.Actor) order.Action {
		if a.IsOperator() {
			return order.AcceptCounter
		}
		return order.AcceptSuggestion
	}, nil)
}

// ForceDate handles POST /api/v1/orders/{orderId}/final-date.
func (s *Server) ForceDate(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.DeliveryWindow
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	return s.negotiate(ctx, orderId, func(actor.Actor) order.Action { return order.ForceDate }, &body)
}

// SetLock handles POST /api/v1/orders/{orderId}/lock.
func (s *Server) SetLock(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.LockState
	if err := bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	action := order.Unlock
	if body.Locked {
		action = order.Lock
	}
	return s.negotiate(ctx, orderId, func(actor.Actor) order.Action { return action }, nil)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancellation.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.negotiate(ctx, orderId, func(actor.Actor) order.Action { return order.Cancel }, nil)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/completion.
func (s *Server) CompleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.negotiate(ctx, orderId, func(actor.Actor) order.Action { return order.MarkFulfilled }, nil)
}

// ReplaceOrderItems handles PUT /api/v1/orders/{orderId}/items.
func (s *Server) ReplaceOrderItems(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := fromID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ItemsUpdate
	if err = bindAndValidate(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewEditOrderItemsCommand(id, a, fromItems(body.Items), deref(body.Instructions))
	if err != nil {
		return s.fail(ctx, err)
	}

	projection, err := s.handlers.EditItems.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(projection))
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context, params servers.ListNotificationsParams) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListNotificationsQuery(a.ID(), deref(params.Unread), deref(params.Limit), deref(params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Notification, 0, len(views))
	for _, v := range views {
		response = append(response, toNotification(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CountUnreadNotifications handles GET /api/v1/notifications/unread-count.
func (s *Server) CountUnreadNotifications(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewCountUnreadNotificationsQuery(a.ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	count, err := s.handlers.CountUnread.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UnreadCount{Count: count})
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context, notificationId openapi_types.UUID) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := fromID(notificationId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(id, a.ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.MarkRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteNotification handles DELETE /api/v1/notifications/{notificationId}.
func (s *Server) DeleteNotification(ctx echo.Context, notificationId openapi_types.UUID) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := fromID(notificationId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteNotificationCommand(id, a.ID())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteNotif.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// negotiate runs one negotiation step. pick chooses the action from the caller's
// role, since some routes mean different actions for customers and operators.
func (s *Server) negotiate(
	ctx echo.Context,
	orderId openapi_types.UUID,
	pick func(actor.Actor) order.Action,
	body *servers.DeliveryWindow,
) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := fromID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var window *kernel.DeliveryWindow
	if body != nil {
		w, windowErr := fromWindow(*body)
		if windowErr != nil {
			return s.fail(ctx, windowErr)
		}
		window = &w
	}

	cmd, err := commands.NewNegotiateCommand(id, a, pick(a), window)
	if err != nil {
		return s.fail(ctx, err)
	}

	projection, err := s.handlers.Negotiate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(projection))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
