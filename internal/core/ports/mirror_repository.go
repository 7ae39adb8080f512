package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mirror"
)

// MirrorRepository defines the persistence contract for fulfillment mirror
// records. Mirror writes happen in the same transaction as the canonical
// order write.
type MirrorRepository interface {
	// Add persists a new mirror record.
	Add(ctx context.Context, record *mirror.FulfillmentRecord) error

	// Update persists changes to an existing mirror record.
	Update(ctx context.Context, record *mirror.FulfillmentRecord) error

	// GetByOrder retrieves the mirror record for an order. Returns an
	// object-not-found error when the order has no mirror.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*mirror.FulfillmentRecord, error)
}

// ReconciliationRepository defines the persistence contract for
// reconciliation flags. Flags are append-only.
type ReconciliationRepository interface {
	// Add persists a newly detected divergence flag.
	Add(ctx context.Context, flag *mirror.ReconciliationFlag) error

	// GetAll retrieves recorded flags, newest first, up to limit.
	// A non-positive limit returns all flags.
	GetAll(ctx context.Context, limit int) ([]*mirror.ReconciliationFlag, error)
}
