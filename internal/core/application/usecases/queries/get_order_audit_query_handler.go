package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// GetOrderAuditQueryHandler reads the audit entries of an order.
type GetOrderAuditQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderAuditQueryHandler creates a handler for audit trail lookups.
func NewGetOrderAuditQueryHandler(db *gorm.DB) GetOrderAuditQueryHandler {
	return GetOrderAuditQueryHandler{db: db}
}

// Handle executes the audit trail lookup, oldest entries first.
func (h GetOrderAuditQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAuditQuery,
) ([]GetOrderAuditQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			actor_id,
			actor_role,
			from_status,
			to_status,
			decision,
			previous_payment,
			recorded_at
		FROM order_audit
		WHERE order_id = ?
		ORDER BY recorded_at
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetOrderAuditQueryResponse, 0)
	for rows.Next() {
		var resp GetOrderAuditQueryResponse
		var id, orderID, actorID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&actorID,
			&resp.ActorRole,
			&resp.FromStatus,
			&resp.ToStatus,
			&resp.Decision,
			&resp.PreviousPayment,
			&resp.RecordedAt,
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
		if resp.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
