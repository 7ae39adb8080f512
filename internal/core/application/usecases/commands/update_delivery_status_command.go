package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a courier progress report: the
// delivery moved to a new state. Dispatch and delivery completion also move
// the canonical order status; delays and delivery cancellations do not.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.DeliveryStatus
	actor   kernel.Actor
	version int

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to advance a delivery.
// A version of 0 skips the optimistic concurrency check.
func NewUpdateDeliveryStatusCommand(
	orderID kernel.UUID,
	target order.DeliveryStatus,
	actor kernel.Actor,
	version int,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// OrderID returns the order whose delivery is advancing.
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested delivery state.
func (c UpdateDeliveryStatusCommand) Target() order.DeliveryStatus {
	return c.target
}

// Actor returns the reporting actor.
func (c UpdateDeliveryStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// Version returns the version the caller last observed, 0 if unchecked.
func (c UpdateDeliveryStatusCommand) Version() int {
	return c.version
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target order.DeliveryStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateDeliveryStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
