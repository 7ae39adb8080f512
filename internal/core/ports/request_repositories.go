package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/refund"
)

// CancellationRepository defines the persistence contract for cancellation
// requests. Requests are append-only history; Update only resolves them.
type CancellationRepository interface {
	// Add persists a new cancellation request.
	Add(ctx context.Context, aggregate *cancellation.Request) error

	// Update persists the resolution of an existing request.
	Update(ctx context.Context, aggregate *cancellation.Request) error

	// Get retrieves a request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cancellation.Request, error)

	// GetPendingByOrder retrieves the pending request for an order, if any.
	// At most one request per order may be pending at a time.
	GetPendingByOrder(ctx context.Context, orderID kernel.UUID) (*cancellation.Request, error)

	// GetAllByOrder retrieves the full request history for an order,
	// newest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*cancellation.Request, error)
}

// RefundRepository defines the persistence contract for refund requests.
type RefundRepository interface {
	// Add persists a new refund request.
	Add(ctx context.Context, aggregate *refund.Request) error

	// Update persists the resolution of an existing request.
	Update(ctx context.Context, aggregate *refund.Request) error

	// Get retrieves a request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*refund.Request, error)

	// GetPendingByOrder retrieves the pending request for an order, if any.
	// At most one request per order may be pending at a time.
	GetPendingByOrder(ctx context.Context, orderID kernel.UUID) (*refund.Request, error)
}
