package kafka

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// NoopNotifier discards all events. Used when event publishing is disabled.
type NoopNotifier struct{}

// NewNoopNotifier creates a notifier that discards all events.
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (NoopNotifier) OrderStatusChanged(context.Context, kernel.UUID, order.Status, order.Status) {}

func (NoopNotifier) InventoryReleaseRequested(context.Context, kernel.UUID) {}
