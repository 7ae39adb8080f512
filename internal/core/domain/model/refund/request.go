// Package refund contains the RefundRequest aggregate for post-delivery
// refunds. Like cancellation requests, refund history is append-only.
package refund

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request was not created
// through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

// Status is the resolution state of a refund request.
type Status int

const (
	// StatusUnknown represents an invalid or undefined request status.
	StatusUnknown Status = iota

	// Pending means the request awaits an admin decision.
	Pending

	// Approved means the refund was granted.
	Approved

	// Denied means the refund was declined and the order stays delivered.
	Denied
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Approved:      "approved",
		Denied:        "denied",
	}
}

// StatusFromString parses a request status from its persisted form.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid request status", s))
}

// String returns the lowercase status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the status is one of the defined values.
func (s Status) Validate() error {
	if s != Pending && s != Approved && s != Denied {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// Request is one refund request against a delivered order.
type Request struct {
	id            kernel.UUID
	orderID       kernel.UUID
	amount        kernel.Money
	reason        string
	status        Status
	requestedAt   time.Time
	resolvedAt    *time.Time
	resolverID    *kernel.UUID
	resolverNotes string
	isConstructed bool
}

// NewRequest creates a pending refund request. The amount must not exceed
// the order total; that check belongs to the order aggregate, the request
// only carries the value.
func NewRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	reason string,
) (*Request, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), amount.Validate()); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Request{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		reason:        reason,
		status:        Pending,
		requestedAt:   time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	reason string,
	status Status,
	requestedAt time.Time,
	resolvedAt *time.Time,
	resolverID *kernel.UUID,
	resolverNotes string,
) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		amount.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Request{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		reason:        reason,
		status:        status,
		requestedAt:   requestedAt,
		resolvedAt:    resolvedAt,
		resolverID:    resolverID,
		resolverNotes: resolverNotes,
		isConstructed: true,
	}, nil
}

// Validate ensures the request was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request identifier.
func (r *Request) ID() kernel.UUID { return r.id }

// OrderID returns the order the request targets.
func (r *Request) OrderID() kernel.UUID { return r.orderID }

// Amount returns the requested refund amount.
func (r *Request) Amount() kernel.Money { return r.amount }

// Reason returns the customer's stated reason.
func (r *Request) Reason() string { return r.reason }

// Status returns the resolution state.
func (r *Request) Status() Status { return r.status }

// RequestedAt returns the submission timestamp.
func (r *Request) RequestedAt() time.Time { return r.requestedAt }

// ResolvedAt returns the resolution timestamp, nil while pending.
func (r *Request) ResolvedAt() *time.Time { return r.resolvedAt }

// ResolverID returns the resolving admin, nil while pending.
func (r *Request) ResolverID() *kernel.UUID { return r.resolverID }

// ResolverNotes returns the notes recorded at resolution.
func (r *Request) ResolverNotes() string { return r.resolverNotes }

// IsPending reports whether the request still awaits a decision.
func (r *Request) IsPending() bool { return r.status == Pending }

// Resolve applies an admin decision with the same idempotence contract as
// cancellation requests: repeating a recorded decision is a no-op, a
// conflicting decision on a resolved request fails.
func (r *Request) Resolve(approve bool, resolverID kernel.UUID, notes string) (bool, error) {
	if err := resolverID.Validate(); err != nil {
		return false, err
	}

	target := Denied
	if approve {
		target = Approved
	}

	if r.status != Pending {
		if r.status == target {
			return false, nil
		}
		return false, errs.NewInvalidStateTransitionError(r.status.String(), target.String())
	}

	now := time.Now().UTC()
	r.status = target
	r.resolvedAt = &now
	r.resolverID = &resolverID
	r.resolverNotes = notes
	return true, nil
}
