package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// Notifier publishes fulfillment events to interested downstream systems.
// Publication is fire-and-forget: implementations must never block or fail
// the mutation that produced the event.
type Notifier interface {
	// OrderStatusChanged announces a canonical status transition.
	OrderStatusChanged(ctx context.Context, orderID kernel.UUID, from, to order.Status)

	// InventoryReleaseRequested asks inventory to release stock held for a
	// cancelled catalog order.
	InventoryReleaseRequested(ctx context.Context, orderID kernel.UUID)
}
