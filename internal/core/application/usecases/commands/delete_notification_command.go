package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrDeleteNotificationCommandIsNotConstructed = errors.New(
	"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
)

// DeleteNotificationCommand removes a notification from its recipient's inbox.
type DeleteNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteNotificationCommand(notificationID, userID kernel.UUID) (DeleteNotificationCommand, error) {
	if err := errors.Join(notificationID.Validate(), userID.Validate()); err != nil {
		return DeleteNotificationCommand{}, err
	}

	return DeleteNotificationCommand{
		notificationID: notificationID,
		userID:         userID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

func (c DeleteNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c DeleteNotificationCommand) UserID() kernel.UUID {
	return c.userID
}

type DeleteNotificationCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteNotificationCommandHandler(uowFactory UoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the notification if the caller is its recipient.
func (h DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd DeleteNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !n.IsAddressedTo(cmd.UserID()) {
		return errs.NewForbiddenError(cmd.UserID(), "notification belongs to another user")
	}

	if err = repo.Delete(ctx, n.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
