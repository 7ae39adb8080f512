package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// ListReconciliationFlagsQueryHandler reads recorded divergence flags.
type ListReconciliationFlagsQueryHandler struct {
	db *gorm.DB
}

// NewListReconciliationFlagsQueryHandler creates a handler for flag
// listings.
func NewListReconciliationFlagsQueryHandler(db *gorm.DB) ListReconciliationFlagsQueryHandler {
	return ListReconciliationFlagsQueryHandler{db: db}
}

// Handle executes the flag listing, newest first.
func (h ListReconciliationFlagsQueryHandler) Handle(
	ctx context.Context,
	query ListReconciliationFlagsQuery,
) ([]ListReconciliationFlagsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			field,
			canonical_value,
			mirror_value,
			detected_at
		FROM reconciliation_flags
		ORDER BY detected_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flags := make([]ListReconciliationFlagsQueryResponse, 0)
	for rows.Next() {
		var resp ListReconciliationFlagsQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Field,
			&resp.Canonical,
			&resp.Mirror,
			&resp.DetectedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		flags = append(flags, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return flags, nil
}
