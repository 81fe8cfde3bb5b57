package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "ordering/commands"

// NegotiateCommandHandler is the negotiation API surface. One Handle call:
//  1. reads the order
//  2. authorizes the actor (ownership, role)
//  3. checks the action against the status table
//  4. consults the locking guard
//  5. lets the negotiation engine compute the transition
//  6. writes the order (compare-and-swap on its version) and the triggered
//     notifications in one transaction
//  7. publishes the notifications after commit, best effort
//
// A lost compare-and-swap reruns steps 1-6 from a fresh read, bounded by the
// retry policy.
//
// Example:
//
//	handler := NewNegotiateCommandHandler(uowFactory, outbox, DefaultRetryPolicy(), logger)
//	projection, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrOrderLocked):
//	    // 423
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // 409
//	}
type NegotiateCommandHandler struct {
	uowFactory UoWFactory
	outbox     *NotificationOutbox
	engine     services.NegotiationEngine
	guard      services.LockingGuard
	retry      RetryPolicy
	logger     *slog.Logger
	tracer     trace.Tracer
}

func NewNegotiateCommandHandler(
	uowFactory UoWFactory,
	outbox *NotificationOutbox,
	retry RetryPolicy,
	logger *slog.Logger,
) NegotiateCommandHandler {
	return NegotiateCommandHandler{
		uowFactory: uowFactory,
		outbox:     outbox,
		engine:     services.NewNegotiationEngine(),
		guard:      services.NewLockingGuard(),
		retry:      retry,
		logger:     logger.With("component", "negotiate_command_handler"),
		tracer:     otel.Tracer(tracerName),
	}
}

// Handle applies the command and returns the new order projection, or exactly
// one error kind: ObjectNotFound, Forbidden, OrderLocked, InvalidTransition,
// ConcurrentModification (retries exhausted) or an infrastructure error.
func (h NegotiateCommandHandler) Handle(ctx context.Context, cmd NegotiateCommand) (queries.OrderProjection, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderProjection{}, err
	}

	ctx, span := h.tracer.Start(ctx, "NegotiateCommandHandler.Handle", trace.WithAttributes(
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.String("order.action", cmd.Action().String()),
		attribute.String("actor.role", cmd.Actor().Role().String()),
	))
	defer span.End()

	var (
		projection queries.OrderProjection
		staged     []*notification.Notification
	)

	err := h.retry.run(ctx, func() error {
		p, s, attemptErr := h.attempt(ctx, cmd)
		if attemptErr != nil {
			return attemptErr
		}
		projection, staged = p, s
		return nil
	})
	if err != nil {
		metrics.RecordRejection(cmd.Action().String(), errorKind(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return queries.OrderProjection{}, err
	}

	metrics.RecordTransition(cmd.Action().String(), projection.Status.String())
	h.logger.InfoContext(ctx, "order transition applied",
		"order_id", projection.ID.String(),
		"action", cmd.Action().String(),
		"status", projection.Status.String(),
		"version", projection.Version,
		"notifications", len(staged),
	)

	h.outbox.Deliver(ctx, staged)
	return projection, nil
}

func (h NegotiateCommandHandler) attempt(
	ctx context.Context,
	cmd NegotiateCommand,
) (queries.OrderProjection, []*notification.Notification, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return queries.OrderProjection{}, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return queries.OrderProjection{}, nil, err
	}

	if err = services.Authorize(current, cmd.Actor(), cmd.Action()); err != nil {
		return queries.OrderProjection{}, nil, err
	}

	// An action the status table refuses is an InvalidTransition even on a
	// locked order; the lock only answers for actions that are otherwise legal.
	if _, err = current.Status().Next(cmd.Action()); err != nil {
		return queries.OrderProjection{}, nil, err
	}

	if err = h.guard.Check(current, cmd.Action(), cmd.Actor().Role()); err != nil {
		return queries.OrderProjection{}, nil, err
	}

	decision, err := h.engine.Decide(current, services.Request{
		Actor:  cmd.Actor(),
		Action: cmd.Action(),
		Window: cmd.Window(),
	})
	if err != nil {
		return queries.OrderProjection{}, nil, err
	}

	if err = orderRepo.Update(ctx, decision.Order); err != nil {
		return queries.OrderProjection{}, nil, err
	}

	staged, err := h.outbox.Stage(ctx, uow.NotificationRepository(), decision.Order.ID(), decision.Intents)
	if err != nil {
		return queries.OrderProjection{}, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return queries.OrderProjection{}, nil, err
	}

	return queries.NewOrderProjection(decision.Order), staged, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrForbidden):
		return "forbidden"
	case errors.Is(err, errs.ErrOrderLocked):
		return "locked"
	case errors.Is(err, errs.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, errs.ErrConcurrentModification):
		return "concurrent_modification"
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return "validation"
	}
	return ""
}
