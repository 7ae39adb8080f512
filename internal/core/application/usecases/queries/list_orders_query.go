package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const defaultListLimit = 50

// ListOrdersQuery retrieves orders newest first with optional filters.
// Empty filter fields are not applied.
//
// Example:
//
//	query, _ := NewListOrdersQuery(ListOrdersFilter{Status: "confirmed", Limit: 20})
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter ListOrdersFilter

	guard guard.ConstructorGuard
}

// ListOrdersFilter narrows a ListOrdersQuery. String fields use the wire
// representation of the corresponding enum.
type ListOrdersFilter struct {
	Status        string
	Kind          string
	CustomerID    kernel.UUID
	CreatedAfter  time.Time
	CreatedBefore time.Time
	Limit         int
	Offset        int
}

// NewListOrdersQuery creates an order listing query. A non-positive limit
// falls back to the default page size; a negative offset is invalid.
func NewListOrdersQuery(filter ListOrdersFilter) (ListOrdersQuery, error) {
	if filter.Offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	return ListOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}
