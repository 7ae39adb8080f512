package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a direct status transition request.
// The transition table and the actor's role decide whether it is allowed;
// the handler adds nothing beyond persistence.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   kernel.Actor
	version int

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
// A version of 0 skips the optimistic concurrency check.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.Actor,
	version int,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Actor returns the requesting actor.
func (c UpdateOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// Version returns the version the caller last observed, 0 if unchecked.
func (c UpdateOrderStatusCommand) Version() int {
	return c.version
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
