package order

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Every mutating path in
// the application consults the single transition table below; there are no
// inline status comparisons scattered across call sites.
//
// Main flow (custom orders start at DesignPending, catalog orders at
// AwaitingPayment):
//
//	DesignPending ──> DesignApproved ──> AwaitingPayment ──> Confirmed ──> Processing
//	      │ ^                                                                  │
//	      v │                                                                  v
//	DesignRejected                              Scheduled ──> InTransit ──> Delivered
//
// Side branches: every non-terminal state may move to CancelRequested and on
// approval to Cancelled; Delivered may move to RefundRequested and on
// approval to Refunded. Cancelled, Refunded, and Delivered (absent a refund
// request) are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// DesignPending is the initial status of a custom order awaiting
	// design review.
	DesignPending

	// DesignApproved indicates the design passed review. Payment may be
	// submitted and verified from here; the design gate is what keeps a
	// custom order from reaching verified payment early.
	DesignApproved

	// DesignRejected indicates the design failed review. The customer may
	// resubmit, which returns the order to DesignPending.
	DesignRejected

	// AwaitingPayment is the initial status of a catalog order, and the
	// status of a custom order whose payment proof has been submitted.
	AwaitingPayment

	// Confirmed indicates an admin verified the payment. Downstream
	// processing and scheduling become eligible.
	Confirmed

	// Processing indicates the order is being prepared for delivery.
	Processing

	// Scheduled indicates a delivery schedule with a courier and time slot
	// has been assigned.
	Scheduled

	// InTransit indicates the courier picked the order up.
	InTransit

	// Delivered indicates the order reached the customer. Terminal except
	// for the refund path.
	Delivered

	// CancelRequested indicates an open cancellation request. Resolution
	// either cancels the order or restores the prior status.
	CancelRequested

	// Cancelled is the terminal state of an approved cancellation.
	Cancelled

	// RefundRequested indicates an open refund request against a
	// delivered order.
	RefundRequested

	// Refunded is the terminal state of an approved refund.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		DesignPending:   "DesignPending",
		DesignApproved:  "DesignApproved",
		DesignRejected:  "DesignRejected",
		AwaitingPayment: "AwaitingPayment",
		Confirmed:       "Confirmed",
		Processing:      "Processing",
		Scheduled:       "Scheduled",
		InTransit:       "InTransit",
		Delivered:       "Delivered",
		CancelRequested: "CancelRequested",
		Cancelled:       "Cancelled",
		RefundRequested: "RefundRequested",
		Refunded:        "Refunded",
	}
}

// getTransitions returns the single transition table consulted by every
// mutating path. An edge absent from this table is an invalid transition,
// no matter who asks.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		DesignPending:   {DesignApproved, DesignRejected, CancelRequested},
		DesignApproved:  {AwaitingPayment, Confirmed, CancelRequested},
		DesignRejected:  {DesignPending, CancelRequested},
		AwaitingPayment: {Confirmed, CancelRequested},
		Confirmed:       {Processing, Scheduled, CancelRequested},
		Processing:      {Scheduled, CancelRequested},
		Scheduled:       {InTransit, CancelRequested},
		InTransit:       {Delivered, CancelRequested},
		Delivered:       {RefundRequested},
		CancelRequested: {Cancelled},
		RefundRequested: {Refunded},
		Cancelled:       {},
		Refunded:        {},
	}
}

// getCustomerTargets lists the target statuses a customer may drive an order
// into. Every other edge is administrative.
func getCustomerTargets() map[Status]bool {
	return map[Status]bool{
		CancelRequested: true, // cancellation request
		RefundRequested: true, // refund request
		DesignPending:   true, // design resubmission after rejection
		AwaitingPayment: true, // payment submission after design approval
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its persisted or API form.
func StatusFromString(str string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == str {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", str))
}

// Validate checks the status is one of the defined values.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is permitted from s,
// except the refund path after Delivered.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}

// CanTransitionTo reports whether the edge s -> target is in the
// transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge s -> target and returns the new status.
// Returns an InvalidStateTransitionError if the edge is not in the table.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidStateTransitionError(s.String(), target.String())
	}
	return target, nil
}

// RequiredRoleSatisfied reports whether the actor's role permits driving an
// order into target. Cancellation and refund requests, design resubmission,
// and payment submission are customer operations; everything else requires
// an administrative role.
func (s Status) RequiredRoleSatisfied(target Status, role kernel.Role) bool {
	if getCustomerTargets()[target] {
		return role == kernel.RoleCustomer
	}
	return role.CanAdminister()
}
