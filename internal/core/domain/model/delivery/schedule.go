// Package delivery contains the Schedule aggregate: the delivery window and
// courier assignment for a scheduled order. The delivery progress itself
// lives on the order (its delivery status sub-machine); the schedule only
// carries the logistics facts.
package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrScheduleIsNotConstructed is returned when a Schedule was not created
// through NewSchedule or RestoreSchedule.
var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule or RestoreSchedule")

// Schedule binds an order to a delivery window and a courier. One schedule
// per order; rescheduling replaces the slot in place.
type Schedule struct {
	id            kernel.UUID
	orderID       kernel.UUID
	slot          TimeSlot
	courierID     kernel.UUID
	assignedAt    time.Time
	createdAt     time.Time
	updatedAt     time.Time
	isConstructed bool
}

// NewSchedule creates a schedule with an initial courier assignment.
func NewSchedule(
	id kernel.UUID,
	orderID kernel.UUID,
	slot TimeSlot,
	courierID kernel.UUID,
) (*Schedule, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		slot.Validate(),
		courierID.Validate(),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Schedule{
		id:            id,
		orderID:       orderID,
		slot:          slot,
		courierID:     courierID,
		assignedAt:    now,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreSchedule reconstructs a schedule from persistence.
func RestoreSchedule(
	id kernel.UUID,
	orderID kernel.UUID,
	slot TimeSlot,
	courierID kernel.UUID,
	assignedAt time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Schedule, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		slot.Validate(),
		courierID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Schedule{
		id:            id,
		orderID:       orderID,
		slot:          slot,
		courierID:     courierID,
		assignedAt:    assignedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the schedule was properly constructed.
func (s *Schedule) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduleIsNotConstructed
	}
	return nil
}

// ID returns the schedule identifier.
func (s *Schedule) ID() kernel.UUID { return s.id }

// OrderID returns the scheduled order.
func (s *Schedule) OrderID() kernel.UUID { return s.orderID }

// Slot returns the delivery window.
func (s *Schedule) Slot() TimeSlot { return s.slot }

// CourierID returns the currently assigned courier.
func (s *Schedule) CourierID() kernel.UUID { return s.courierID }

// AssignedAt returns when the current courier was assigned.
func (s *Schedule) AssignedAt() time.Time { return s.assignedAt }

// CreatedAt returns the schedule creation timestamp.
func (s *Schedule) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last modification timestamp.
func (s *Schedule) UpdatedAt() time.Time { return s.updatedAt }

// Reassign replaces the courier. Reassignment is only allowed while the
// order's delivery is still in the scheduled state; once the courier is en
// route the assignment is fixed.
func (s *Schedule) Reassign(courierID kernel.UUID, deliveryStatus order.DeliveryStatus) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if deliveryStatus != order.DeliveryScheduled {
		return errs.NewNotReassignableError(s.orderID.String(), deliveryStatus.String())
	}

	now := time.Now().UTC()
	s.courierID = courierID
	s.assignedAt = now
	s.updatedAt = now
	return nil
}

// Reschedule replaces the delivery window. Like reassignment it is only
// allowed while the delivery is still scheduled.
func (s *Schedule) Reschedule(slot TimeSlot, deliveryStatus order.DeliveryStatus) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if deliveryStatus != order.DeliveryScheduled {
		return errs.NewNotReassignableError(s.orderID.String(), deliveryStatus.String())
	}

	s.slot = slot
	s.updatedAt = time.Now().UTC()
	return nil
}
