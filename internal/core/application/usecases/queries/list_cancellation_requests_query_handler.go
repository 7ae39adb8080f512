package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// ListCancellationRequestsQueryHandler reads cancellation request rows.
type ListCancellationRequestsQueryHandler struct {
	db *gorm.DB
}

// NewListCancellationRequestsQueryHandler creates a handler for request
// listings.
func NewListCancellationRequestsQueryHandler(db *gorm.DB) ListCancellationRequestsQueryHandler {
	return ListCancellationRequestsQueryHandler{db: db}
}

// Handle executes the request listing, newest first.
func (h ListCancellationRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListCancellationRequestsQuery,
) ([]ListCancellationRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := `
		SELECT
			id,
			order_id,
			reason,
			status,
			prior_status,
			requested_at,
			resolved_at,
			resolver_notes
		FROM cancellation_requests
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.OrderID().Validate() == nil {
		q += " AND order_id = ?"
		args = append(args, query.OrderID().String())
	}
	if query.PendingOnly() {
		q += " AND status = 'pending'"
	}
	q += " ORDER BY requested_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(q, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]ListCancellationRequestsQueryResponse, 0)
	for rows.Next() {
		var resp ListCancellationRequestsQueryResponse
		var id, orderID uuid.UUID
		var resolvedAt sql.NullTime
		var notes sql.NullString

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Reason,
			&resp.Status,
			&resp.PriorStatus,
			&resp.RequestedAt,
			&resolvedAt,
			&notes,
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
		if resolvedAt.Valid {
			t := resolvedAt.Time
			resp.ResolvedAt = &t
		}
		if notes.Valid {
			resp.ResolverNotes = notes.String
		}

		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
