package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is one line of an order as submitted by a client.
type ItemInput struct {
	ProductName string
	Quantity    int
	Note        string
}

// OrderInput is the cart handed over at checkout.
type OrderInput struct {
	AddressID    *kernel.UUID
	Store        string
	Instructions string
	Items        []ItemInput
}

// CreateOrderCommand represents a checkout: a customer hands over a cart with the
// delivery window they would like.
//
// Example:
//
//	desired, _ := kernel.ParseDeliveryWindow("2024-06-01", "morning")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customer, desired, OrderInput{
//	    Store: "Central",
//	    Items: []ItemInput{{ProductName: "Milk", Quantity: 2}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	projection, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   actor.Actor
	desired kernel.DeliveryWindow
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the cart: ids, the desired window and at
// least one well-formed item.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	a actor.Actor,
	desired kernel.DeliveryWindow,
	input OrderInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
		cmd.setDesired(desired),
		cmd.setDetails(input),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Actor() actor.Actor {
	return c.actor
}

func (c CreateOrderCommand) Desired() kernel.DeliveryWindow {
	return c.desired
}

func (c CreateOrderCommand) Details() order.Details {
	d := c.details
	d.Items = append([]order.Item(nil), c.details.Items...)
	return d
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *CreateOrderCommand) setDesired(desired kernel.DeliveryWindow) error {
	if err := desired.Validate(); err != nil {
		return err
	}

	c.desired = desired
	return nil
}

func (c *CreateOrderCommand) setDetails(input OrderInput) error {
	if input.AddressID != nil {
		if err := input.AddressID.Validate(); err != nil {
			return err
		}
	}

	items, err := buildItems(input.Items)
	if err != nil {
		return err
	}

	c.details = order.Details{
		AddressID:    input.AddressID,
		Store:        strings.TrimSpace(input.Store),
		Instructions: input.Instructions,
		Items:        items,
	}
	return nil
}

func buildItems(inputs []ItemInput) ([]order.Item, error) {
	if len(inputs) == 0 {
		return nil, order.ErrOrderHasNoItems
	}

	items := make([]order.Item, 0, len(inputs))
	var problems []error
	for _, in := range inputs {
		item, err := order.NewItem(in.ProductName, in.Quantity, in.Note)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return items, nil
}
