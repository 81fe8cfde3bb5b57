package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrNegotiateCommandIsNotConstructed = errors.New(
	"NegotiateCommand must be created via NewNegotiateCommand constructor",
)

// NegotiateCommand is one actor action on an order's delivery negotiation:
// proposing, countering, accepting or forcing a window, toggling the lock,
// cancelling, starting processing or completing the order.
//
// Example:
//
//	w, _ := kernel.ParseDeliveryWindow("2024-06-03", "evening")
//	cmd, err := NewNegotiateCommand(orderID, operator, order.ForceDate, &w)
//	if err != nil {
//	    return err // malformed request
//	}
//	projection, err := handler.Handle(ctx, cmd)
type NegotiateCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   actor.Actor
	action  order.Action
	window  *kernel.DeliveryWindow

	guard guard.ConstructorGuard
}

// NewNegotiateCommand validates the structure of the request. window is required
// for ProposeDate, CounterPropose and ForceDate and dropped for other actions.
func NewNegotiateCommand(
	orderID kernel.UUID,
	a actor.Actor,
	action order.Action,
	window *kernel.DeliveryWindow,
) (NegotiateCommand, error) {
	cmd := NegotiateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
		cmd.setAction(action, window),
	); err != nil {
		return NegotiateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NegotiateCommand) Validate() error {
	return c.guard.Validate(ErrNegotiateCommandIsNotConstructed)
}

func (c NegotiateCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c NegotiateCommand) Actor() actor.Actor {
	return c.actor
}

func (c NegotiateCommand) Action() order.Action {
	return c.action
}

// Window returns the payload window, or nil for actions without one.
func (c NegotiateCommand) Window() *kernel.DeliveryWindow {
	if c.window == nil {
		return nil
	}
	w := *c.window
	return &w
}

func (c *NegotiateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *NegotiateCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *NegotiateCommand) setAction(action order.Action, window *kernel.DeliveryWindow) error {
	if err := action.Validate(); err != nil {
		return err
	}

	if action == order.EditItems {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%s is handled by EditOrderItemsCommand", action))
	}

	c.action = action
	if !action.RequiresWindow() {
		return nil
	}

	if window == nil {
		return errs.NewValueIsRequiredError("delivery window")
	}
	if err := window.Validate(); err != nil {
		return err
	}

	w := *window
	c.window = &w
	return nil
}
