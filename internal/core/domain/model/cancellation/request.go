// Package cancellation contains the CancellationRequest aggregate: the
// request/resolution sub-machine attached to an order. Requests are
// append-only history; a later request against the same order creates a new
// record, never overwrites an old one.
package cancellation

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request was not created
// through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

// Status is the resolution state of a cancellation request.
type Status int

const (
	// StatusUnknown represents an invalid or undefined request status.
	StatusUnknown Status = iota

	// Pending means the request awaits an admin decision. At most one
	// pending request may exist per order.
	Pending

	// Approved means the request was granted and the order cancelled.
	Approved

	// Denied means the request was declined; the order's operational
	// status was left untouched.
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

// Request is one cancellation request against an order. It records the
// status the order held before the request so a denial can restore it.
type Request struct {
	id            kernel.UUID
	orderID       kernel.UUID
	reason        string
	status        Status
	priorStatus   order.Status
	requestedAt   time.Time
	resolvedAt    *time.Time
	resolverID    *kernel.UUID
	resolverNotes string
	isConstructed bool
}

// NewRequest creates a pending cancellation request. The reason is required;
// priorStatus is the order status at request time.
func NewRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	reason string,
	priorStatus order.Status,
) (*Request, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), priorStatus.Validate()); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Request{
		id:            id,
		orderID:       orderID,
		reason:        reason,
		status:        Pending,
		priorStatus:   priorStatus,
		requestedAt:   time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	reason string,
	status Status,
	priorStatus order.Status,
	requestedAt time.Time,
	resolvedAt *time.Time,
	resolverID *kernel.UUID,
	resolverNotes string,
) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
		priorStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Request{
		id:            id,
		orderID:       orderID,
		reason:        reason,
		status:        status,
		priorStatus:   priorStatus,
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

// Reason returns the customer's stated reason.
func (r *Request) Reason() string { return r.reason }

// Status returns the resolution state.
func (r *Request) Status() Status { return r.status }

// PriorStatus returns the order status at request time.
func (r *Request) PriorStatus() order.Status { return r.priorStatus }

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

// Resolve applies an admin decision. Resolution is idempotent under retry:
// re-applying the decision already recorded returns applied=false and
// changes nothing; a conflicting decision on a resolved request is an
// invalid transition. History is append-only: a resolved request is never
// reopened.
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
