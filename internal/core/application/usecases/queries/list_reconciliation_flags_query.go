package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListReconciliationFlagsQueryIsNotConstructed = errors.New(
	"ListReconciliationFlagsQuery must be created via NewListReconciliationFlagsQuery constructor",
)

// ListReconciliationFlagsQuery retrieves divergence flags recorded by the
// reconciliation sweep, newest first.
type ListReconciliationFlagsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListReconciliationFlagsQuery creates a flag listing query. A
// non-positive limit falls back to the default page size.
func NewListReconciliationFlagsQuery(limit int) (ListReconciliationFlagsQuery, error) {
	if limit < 0 {
		return ListReconciliationFlagsQuery{}, errs.NewValueIsInvalidError("limit")
	}
	if limit == 0 {
		limit = defaultListLimit
	}

	return ListReconciliationFlagsQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListReconciliationFlagsQuery) Validate() error {
	return q.guard.Validate(ErrListReconciliationFlagsQueryIsNotConstructed)
}

// Limit returns the page size.
func (q ListReconciliationFlagsQuery) Limit() int {
	return q.limit
}

// ListReconciliationFlagsQueryResponse is one recorded divergence.
type ListReconciliationFlagsQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Field      string
	Canonical  string
	Mirror     string
	DetectedAt time.Time
}
