package commands_test

import (
	"errors"
	"strings"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, role actor.Role) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newActor(t, kernel.NewUUID(), role), window(t, "2024-06-01", "morning"), validOrderInput(),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, actor.Customer)
	operators := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	f := newOutboxFixture()
	orderRepo := new(MockOrderRepository)
	notes := new(MockNotificationRepository)
	marks := new(MockNotificationRepository)
	uow := new(MockUoW)
	markUoW := new(MockUoW)

	isNewOrder := mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Type() == notification.NewOrder && n.OrderID() != nil && *n.OrderID() == cmd.OrderID()
	})

	mock.InOrder(
		f.factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notes).Once(),
		f.directory.On("Operators", ctx).Return(operators, nil).Once(),
		notes.On("Add", ctx, isNewOrder).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		f.publisher.On("Publish", ctx, isNewOrder).Return(nil).Twice(),
		f.factory.On("Create").Return(markUoW).Once(),
		markUoW.On("Begin", ctx).Return(nil).Once(),
		markUoW.On("NotificationRepository").Return(marks).Once(),
		marks.On("MarkDelivered", ctx, mock.AnythingOfType("kernel.UUID"), mock.AnythingOfType("time.Time")).
			Return(nil).Twice(),
		markUoW.On("Commit", ctx).Return(nil).Once(),
		markUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, f.outbox, discardLogger())
	projection, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, cmd.OrderID(), projection.ID)
	assert.Equal(t, order.New, projection.Status)
	assert.Equal(t, cmd.Actor().ID(), projection.CustomerID)
	assert.True(t, strings.HasPrefix(projection.Number, "ORD-"))
	assert.False(t, projection.IsLocked)
	assert.Nil(t, projection.Suggested)
	assert.Len(t, projection.Items, 2)

	recipients := map[kernel.UUID]bool{}
	for _, call := range notes.Calls {
		recipients[call.Arguments.Get(1).(*notification.Notification).UserID()] = true
	}
	assert.Equal(t, map[kernel.UUID]bool{operators[0]: true, operators[1]: true}, recipients)

	f.assertExpectations(t)
	orderRepo.AssertExpectations(t)
	notes.AssertExpectations(t)
	marks.AssertExpectations(t)
	uow.AssertExpectations(t)
	markUoW.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newOutboxFixture()
	h := commands.NewCreateOrderCommandHandler(f.factory, f.outbox, discardLogger())

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_OperatorForbidden(t *testing.T) {
	f := newOutboxFixture()
	h := commands.NewCreateOrderCommandHandler(f.factory, f.outbox, discardLogger())

	_, err := h.Handle(t.Context(), newCreateOrderCommand(t, actor.Operator))
	require.ErrorIs(t, err, errs.ErrForbidden)
	f.factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newOutboxFixture()
	uow := new(MockUoW)
	mock.InOrder(
		f.factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, f.outbox, discardLogger())
	_, err := h.Handle(ctx, newCreateOrderCommand(t, actor.Customer))
	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	f := newOutboxFixture()
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		f.factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, f.outbox, discardLogger())
	_, err := h.Handle(ctx, newCreateOrderCommand(t, actor.Customer))
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newOutboxFixture()
	orderRepo := new(MockOrderRepository)
	notes := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		f.factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notes).Once(),
		f.directory.On("Operators", ctx).Return([]kernel.UUID{kernel.NewUUID()}, nil).Once(),
		notes.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, f.outbox, discardLogger())
	_, err := h.Handle(ctx, newCreateOrderCommand(t, actor.Customer))
	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
