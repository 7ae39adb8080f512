// Package schedulerepo persists delivery schedules.
package schedulerepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// ScheduleDTO represents a delivery schedule row. The order carries at most
// one schedule, enforced by the unique index on order_id.
type ScheduleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	SlotStart  time.Time
	SlotEnd    time.Time
	CourierID  uuid.UUID `gorm:"type:uuid;index"`
	AssignedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for delivery schedules.
func (ScheduleDTO) TableName() string {
	return "delivery_schedules"
}

func fromDomain(aggregate *delivery.Schedule) ScheduleDTO {
	return ScheduleDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		SlotStart:  aggregate.Slot().Start(),
		SlotEnd:    aggregate.Slot().End(),
		CourierID:  aggregate.CourierID().Bytes(),
		AssignedAt: aggregate.AssignedAt(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func toDomain(dto ScheduleDTO) (*delivery.Schedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	slot, err := delivery.NewTimeSlot(dto.SlotStart, dto.SlotEnd)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreSchedule(
		id,
		orderID,
		slot,
		courierID,
		dto.AssignedAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
