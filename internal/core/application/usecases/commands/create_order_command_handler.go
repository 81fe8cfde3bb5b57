package commands

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler registers a checked-out cart as a new order and tells
// the operators about it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, outbox, logger)
//	projection, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// projection.Status == order.New, operators received new_order
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	outbox     *NotificationOutbox
	engine     services.NegotiationEngine
	logger     *slog.Logger
	now        func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	outbox *NotificationOutbox,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		outbox:     outbox,
		engine:     services.NewNegotiationEngine(),
		logger:     logger.With("component", "create_order_command_handler"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle creates the order in status new together with its new_order
// notifications. Only customers check out.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (queries.OrderProjection, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderProjection{}, err
	}

	if cmd.Actor().Role() != actor.Customer {
		return queries.OrderProjection{}, errs.NewForbiddenError(cmd.Actor().ID(), "only customers place orders")
	}

	createdAt := h.now()
	o, err := order.NewOrder(
		cmd.OrderID(),
		order.NewOrderNumber(cmd.OrderID(), createdAt),
		cmd.Actor().ID(),
		cmd.Desired(),
		cmd.Details(),
		createdAt,
	)
	if err != nil {
		return queries.OrderProjection{}, err
	}

	staged, err := h.persist(ctx, o)
	if err != nil {
		return queries.OrderProjection{}, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(), "number", o.Number(), "notifications", len(staged))

	h.outbox.Deliver(ctx, staged)
	return queries.NewOrderProjection(o), nil
}

func (h CreateOrderCommandHandler) persist(ctx context.Context, o *order.Order) ([]*notification.Notification, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	staged, err := h.outbox.Stage(ctx, uow.NotificationRepository(), o.ID(), h.engine.Intake(o))
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return staged, nil
}
