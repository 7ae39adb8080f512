package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// ScheduleRepository defines the persistence contract for delivery
// schedules. Each order carries at most one schedule.
type ScheduleRepository interface {
	// Add persists a new delivery schedule.
	Add(ctx context.Context, aggregate *delivery.Schedule) error

	// Update persists changes to an existing schedule.
	Update(ctx context.Context, aggregate *delivery.Schedule) error

	// GetByOrder retrieves the schedule for an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Schedule, error)
}
