package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const DefaultRelayBatchSize = 100

var ErrRelayNotificationsCommandIsNotConstructed = errors.New(
	"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
)

// RelayNotificationsCommand republishes notifications whose post-commit delivery
// failed, oldest first.
type RelayNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayNotificationsCommand(batchSize int) (RelayNotificationsCommand, error) {
	if batchSize <= 0 {
		return RelayNotificationsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}

	return RelayNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}

func (c RelayNotificationsCommand) BatchSize() int {
	return c.batchSize
}

type RelayNotificationsCommandHandler struct {
	uowFactory UoWFactory
	outbox     *NotificationOutbox
	logger     *slog.Logger
}

func NewRelayNotificationsCommandHandler(
	uowFactory UoWFactory,
	outbox *NotificationOutbox,
	logger *slog.Logger,
) RelayNotificationsCommandHandler {
	return RelayNotificationsCommandHandler{
		uowFactory: uowFactory,
		outbox:     outbox,
		logger:     logger.With("component", "relay_notifications_command_handler"),
	}
}

// Handle returns how many notifications were delivered in this pass.
func (h RelayNotificationsCommandHandler) Handle(ctx context.Context, cmd RelayNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	pending, err := uow.NotificationRepository().GetUndelivered(ctx, cmd.BatchSize())
	_ = uow.Rollback(ctx)
	if err != nil {
		return 0, err
	}

	if len(pending) == 0 {
		return 0, nil
	}

	delivered := h.outbox.Deliver(ctx, pending)
	h.logger.InfoContext(ctx, "relayed notifications", "pending", len(pending), "delivered", delivered)
	return delivered, nil
}
