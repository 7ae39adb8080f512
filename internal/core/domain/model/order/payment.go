package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentStatus is the payment sub-state of an order. It gates all downstream
// progress: delivery may not leave its pending state until the payment is
// verified.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means no admin decision has been recorded yet, or the
	// customer resubmitted payment after a rejection.
	PaymentPending

	// PaymentVerified means an admin verified the payment.
	PaymentVerified

	// PaymentRejected means an admin rejected the payment. The order stays
	// in AwaitingPayment so the customer can resubmit.
	PaymentRejected
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentVerified: "verified",
		PaymentRejected: "rejected",
	}
}

// PaymentStatusFromString parses a payment status from its persisted form.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if status != PaymentUnknown && name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment_status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// String returns the lowercase payment status name.
func (p PaymentStatus) String() string {
	if s, ok := getPaymentStatusStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// Validate checks the payment status is one of the defined values.
func (p PaymentStatus) Validate() error {
	if p != PaymentPending && p != PaymentVerified && p != PaymentRejected {
		return errs.NewValueIsInvalidErrorWithCause("payment_status",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// IsResolved reports whether an admin decision has been recorded.
func (p PaymentStatus) IsResolved() bool {
	return p == PaymentVerified || p == PaymentRejected
}

// PaymentDecision is an admin's verdict on a submitted payment.
type PaymentDecision int

const (
	// PaymentDecisionUnknown represents an invalid or undefined decision.
	PaymentDecisionUnknown PaymentDecision = iota

	// DecisionVerify accepts the payment.
	DecisionVerify

	// DecisionReject declines the payment.
	DecisionReject
)

// PaymentDecisionFromString parses a decision from its API form.
func PaymentDecisionFromString(s string) (PaymentDecision, error) {
	switch s {
	case "verified":
		return DecisionVerify, nil
	case "rejected":
		return DecisionReject, nil
	default:
		return PaymentDecisionUnknown, errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%q is not a valid payment decision", s))
	}
}

// String returns the decision in its recorded form.
func (d PaymentDecision) String() string {
	switch d {
	case DecisionVerify:
		return "verified"
	case DecisionReject:
		return "rejected"
	default:
		return "unknown"
	}
}

// Validate checks the decision is one of the defined values.
func (d PaymentDecision) Validate() error {
	if d != DecisionVerify && d != DecisionReject {
		return errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%d is not a valid payment decision", d))
	}
	return nil
}

// ResultingStatus returns the payment status an applied decision yields.
func (d PaymentDecision) ResultingStatus() PaymentStatus {
	if d == DecisionVerify {
		return PaymentVerified
	}
	return PaymentRejected
}
