package commands

import (
	"errors"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrEditOrderItemsCommandIsNotConstructed = errors.New(
	"EditOrderItemsCommand must be created via NewEditOrderItemsCommand constructor",
)

// EditOrderItemsCommand replaces the item list and instructions of an order. It
// is refused while the order is locked.
type EditOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actor        actor.Actor
	items        []order.Item
	instructions string

	guard guard.ConstructorGuard
}

func NewEditOrderItemsCommand(
	orderID kernel.UUID,
	a actor.Actor,
	items []ItemInput,
	instructions string,
) (EditOrderItemsCommand, error) {
	cmd := EditOrderItemsCommand{
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
		cmd.setItems(items),
	); err != nil {
		return EditOrderItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderItemsCommandIsNotConstructed)
}

func (c EditOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c EditOrderItemsCommand) Actor() actor.Actor {
	return c.actor
}

func (c EditOrderItemsCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c EditOrderItemsCommand) Instructions() string {
	return c.instructions
}

func (c *EditOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderItemsCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *EditOrderItemsCommand) setItems(inputs []ItemInput) error {
	items, err := buildItems(inputs)
	if err != nil {
		return err
	}

	c.items = items
	return nil
}
