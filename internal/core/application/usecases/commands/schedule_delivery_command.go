package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand represents booking a delivery window and courier
// for a paid order. Scheduling requires a verified payment and may happen
// only once per order.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	scheduleID kernel.UUID
	orderID    kernel.UUID
	slot       delivery.TimeSlot
	courierID  kernel.UUID
	actor      kernel.Actor
	version    int

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to schedule a delivery.
// A version of 0 skips the optimistic concurrency check.
func NewScheduleDeliveryCommand(
	scheduleID kernel.UUID,
	orderID kernel.UUID,
	slot delivery.TimeSlot,
	courierID kernel.UUID,
	actor kernel.Actor,
	version int,
) (ScheduleDeliveryCommand, error) {
	cmd := ScheduleDeliveryCommand{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setScheduleID(scheduleID),
		cmd.setOrderID(orderID),
		cmd.setSlot(slot),
		cmd.setCourierID(courierID),
		cmd.setActor(actor),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// ScheduleID returns the identifier for the new schedule.
func (c ScheduleDeliveryCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}

// OrderID returns the order to schedule.
func (c ScheduleDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Slot returns the delivery window.
func (c ScheduleDeliveryCommand) Slot() delivery.TimeSlot {
	return c.slot
}

// CourierID returns the courier to assign.
func (c ScheduleDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Actor returns the scheduling actor.
func (c ScheduleDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

// Version returns the version the caller last observed, 0 if unchecked.
func (c ScheduleDeliveryCommand) Version() int {
	return c.version
}

func (c *ScheduleDeliveryCommand) setScheduleID(scheduleID kernel.UUID) error {
	if err := scheduleID.Validate(); err != nil {
		return err
	}

	c.scheduleID = scheduleID
	return nil
}

func (c *ScheduleDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ScheduleDeliveryCommand) setSlot(slot delivery.TimeSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	c.slot = slot
	return nil
}

func (c *ScheduleDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *ScheduleDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
