package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/metrics"
)

// EditOrderItemsCommandHandler changes the CRUD payload of an order. The locking
// guard refuses the edit for a locked order, whatever the caller's role.
type EditOrderItemsCommandHandler struct {
	uowFactory UoWFactory
	guard      services.LockingGuard
	retry      RetryPolicy
	logger     *slog.Logger
}

func NewEditOrderItemsCommandHandler(
	uowFactory UoWFactory,
	retry RetryPolicy,
	logger *slog.Logger,
) EditOrderItemsCommandHandler {
	return EditOrderItemsCommandHandler{
		uowFactory: uowFactory,
		guard:      services.NewLockingGuard(),
		retry:      retry,
		logger:     logger.With("component", "edit_order_items_command_handler"),
	}
}

func (h EditOrderItemsCommandHandler) Handle(
	ctx context.Context,
	cmd EditOrderItemsCommand,
) (queries.OrderProjection, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderProjection{}, err
	}

	var projection queries.OrderProjection
	err := h.retry.run(ctx, func() error {
		p, attemptErr := h.attempt(ctx, cmd)
		if attemptErr != nil {
			return attemptErr
		}
		projection = p
		return nil
	})
	if err != nil {
		metrics.RecordRejection(order.EditItems.String(), errorKind(err))
		return queries.OrderProjection{}, err
	}

	metrics.RecordTransition(order.EditItems.String(), projection.Status.String())
	h.logger.InfoContext(ctx, "order items replaced",
		"order_id", projection.ID.String(), "items", len(projection.Items), "version", projection.Version)
	return projection, nil
}

func (h EditOrderItemsCommandHandler) attempt(ctx context.Context, cmd EditOrderItemsCommand) (queries.OrderProjection, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return queries.OrderProjection{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return queries.OrderProjection{}, err
	}

	if err = services.Authorize(o, cmd.Actor(), order.EditItems); err != nil {
		return queries.OrderProjection{}, err
	}

	if err = h.guard.Check(o, order.EditItems, cmd.Actor().Role()); err != nil {
		return queries.OrderProjection{}, err
	}

	if err = o.ReplaceItems(cmd.Items(), cmd.Instructions()); err != nil {
		return queries.OrderProjection{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return queries.OrderProjection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return queries.OrderProjection{}, err
	}

	return queries.NewOrderProjection(o), nil
}
