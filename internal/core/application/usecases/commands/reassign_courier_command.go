package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReassignCourierCommandIsNotConstructed = errors.New(
	"ReassignCourierCommand must be created via NewReassignCourierCommand constructor",
)

// ReassignCourierCommand represents swapping the courier on a scheduled
// delivery. Only possible while the courier has not left yet.
type ReassignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewReassignCourierCommand creates a command to reassign a courier.
func NewReassignCourierCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	actor kernel.Actor,
) (ReassignCourierCommand, error) {
	cmd := ReassignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setActor(actor),
	); err != nil {
		return ReassignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignCourierCommand) Validate() error {
	return c.guard.Validate(ErrReassignCourierCommandIsNotConstructed)
}

// OrderID returns the order whose delivery is reassigned.
func (c ReassignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the replacement courier.
func (c ReassignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Actor returns the requesting actor.
func (c ReassignCourierCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ReassignCourierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReassignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *ReassignCourierCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
