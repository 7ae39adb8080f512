package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order row from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// order with the requested identifier exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("orderID", query.OrderID(), err)
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
