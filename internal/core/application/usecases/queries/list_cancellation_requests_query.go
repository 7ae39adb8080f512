package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrListCancellationRequestsQueryIsNotConstructed = errors.New(
	"ListCancellationRequestsQuery must be created via NewListCancellationRequestsQuery constructor",
)

// ListCancellationRequestsQuery retrieves cancellation requests, optionally
// narrowed to one order or to pending requests only.
type ListCancellationRequestsQuery struct {
	orderID     kernel.UUID
	pendingOnly bool

	guard guard.ConstructorGuard
}

// NewListCancellationRequestsQuery creates a request listing query. Pass a
// zero UUID to list across all orders.
func NewListCancellationRequestsQuery(orderID kernel.UUID, pendingOnly bool) ListCancellationRequestsQuery {
	return ListCancellationRequestsQuery{
		orderID:     orderID,
		pendingOnly: pendingOnly,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListCancellationRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListCancellationRequestsQueryIsNotConstructed)
}

// OrderID returns the order filter; invalid when unset.
func (q ListCancellationRequestsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// PendingOnly reports whether only unresolved requests are wanted.
func (q ListCancellationRequestsQuery) PendingOnly() bool {
	return q.pendingOnly
}

// ListCancellationRequestsQueryResponse is one cancellation request row.
type ListCancellationRequestsQueryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	Reason        string
	Status        string
	PriorStatus   string
	RequestedAt   time.Time
	ResolvedAt    *time.Time
	ResolverNotes string
}
