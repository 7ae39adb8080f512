// Package queries contains read operations of the CQRS split. Query
// handlers go straight to the database and return plain response structs;
// they never load aggregates or run domain logic.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of a single order.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	Kind           string
	CustomerID     kernel.UUID
	TotalAmount    int64
	DesignBrief    string
	Status         string
	PaymentStatus  string
	DeliveryStatus string
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
