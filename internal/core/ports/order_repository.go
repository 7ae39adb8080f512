package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderFilter narrows order listings. Zero-valued fields are not applied.
type OrderFilter struct {
	Status        order.Status
	Kind          order.Kind
	CustomerID    kernel.UUID
	CreatedAfter  time.Time
	CreatedBefore time.Time
	Limit         int
	Offset        int
}

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the aggregate's pending audit entries in the same
// transaction as the aggregate itself.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the aggregate's version: a stale version fails with a
	// version conflict instead of overwriting concurrent changes.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders matching the filter, newest first.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// GetAllCustom retrieves every custom order. Used by the
	// reconciliation sweep to pair canonical orders with their mirrors.
	GetAllCustom(ctx context.Context) ([]*order.Order, error)

	// GetAuditTrail retrieves the audit entries for an order, oldest first.
	GetAuditTrail(ctx context.Context, orderID kernel.UUID) ([]order.AuditEntry, error)
}
