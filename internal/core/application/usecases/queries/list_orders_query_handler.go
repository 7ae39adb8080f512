package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// ListOrdersQueryHandler reads order rows matching a filter.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	sql := `
		SELECT
			id,
			kind,
			customer_id,
			total_amount,
			design_brief,
			status,
			payment_status,
			delivery_status,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 6)

	if filter.Status != "" {
		sql += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Kind != "" {
		sql += " AND kind = ?"
		args = append(args, filter.Kind)
	}
	if filter.CustomerID.Validate() == nil {
		sql += " AND customer_id = ?"
		args = append(args, filter.CustomerID.String())
	}
	if !filter.CreatedAfter.IsZero() {
		sql += " AND created_at >= ?"
		args = append(args, filter.CreatedAfter)
	}
	if !filter.CreatedBefore.IsZero() {
		sql += " AND created_at < ?"
		args = append(args, filter.CreatedBefore)
	}

	sql += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)
	for rows.Next() {
		var resp GetOrderQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Kind,
			&customerID,
			&resp.TotalAmount,
			&resp.DesignBrief,
			&resp.Status,
			&resp.PaymentStatus,
			&resp.DeliveryStatus,
			&resp.Version,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
