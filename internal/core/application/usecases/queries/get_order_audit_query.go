package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderAuditQueryIsNotConstructed = errors.New(
	"GetOrderAuditQuery must be created via NewGetOrderAuditQuery constructor",
)

// GetOrderAuditQuery retrieves the audit trail of an order, oldest first.
type GetOrderAuditQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderAuditQuery creates a query for an order's audit trail.
func NewGetOrderAuditQuery(orderID kernel.UUID) (GetOrderAuditQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderAuditQuery{}, err
	}

	return GetOrderAuditQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderAuditQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAuditQueryIsNotConstructed)
}

// OrderID returns the order whose trail is requested.
func (q GetOrderAuditQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderAuditQueryResponse is one recorded audit entry.
type GetOrderAuditQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	ActorID         kernel.UUID
	ActorRole       string
	FromStatus      string
	ToStatus        string
	Decision        string
	PreviousPayment string
	RecordedAt      time.Time
}
