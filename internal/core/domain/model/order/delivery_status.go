package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DeliveryStatus is the delivery sub-state of an order, mirrored onto the
// active DeliverySchedule and, for custom orders, onto the fulfillment
// mirror record.
//
// Forward edges are DeliveryScheduled -> DeliveryInTransit ->
// DeliveryDelivered. Delayed and cancelled are side exits from the active
// states; a delayed delivery may resume to in-transit. Pending has a single
// edge to scheduled, behind the payment gate in MarkScheduled, so delivery
// never leaves pending on an unpaid order. Regression from in-transit back
// to scheduled is not permitted.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryPending means no schedule exists yet. Delivery may leave this
	// state only once payment is verified.
	DeliveryPending

	// DeliveryScheduled means a courier, date, and time slot are assigned.
	DeliveryScheduled

	// DeliveryInTransit means the courier picked the order up.
	DeliveryInTransit

	// DeliveryDelivered is the terminal success state.
	DeliveryDelivered

	// DeliveryDelayed marks a stalled delivery that may resume.
	DeliveryDelayed

	// DeliveryCancelled is the terminal state of a cancelled delivery.
	DeliveryCancelled
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:   "unknown",
		DeliveryPending:   "pending",
		DeliveryScheduled: "scheduled",
		DeliveryInTransit: "in_transit",
		DeliveryDelivered: "delivered",
		DeliveryDelayed:   "delayed",
		DeliveryCancelled: "cancelled",
	}
}

func getDeliveryTransitions() map[DeliveryStatus][]DeliveryStatus {
	return map[DeliveryStatus][]DeliveryStatus{
		DeliveryPending:   {DeliveryScheduled},
		DeliveryScheduled: {DeliveryInTransit, DeliveryDelayed, DeliveryCancelled},
		DeliveryInTransit: {DeliveryDelivered, DeliveryDelayed, DeliveryCancelled},
		DeliveryDelayed:   {DeliveryInTransit, DeliveryCancelled},
		DeliveryDelivered: {},
		DeliveryCancelled: {},
	}
}

// DeliveryStatusFromString parses a delivery status from its persisted or API form.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, name := range getDeliveryStatusStrings() {
		if status != DeliveryUnknown && name == s {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause("delivery_status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// String returns the lowercase delivery status name.
func (d DeliveryStatus) String() string {
	if s, ok := getDeliveryStatusStrings()[d]; ok {
		return s
	}
	return "unknown"
}

// Validate checks the delivery status is one of the defined values.
func (d DeliveryStatus) Validate() error {
	if d == DeliveryUnknown {
		return errs.NewValueIsInvalidErrorWithCause("delivery_status",
			fmt.Errorf("%d is not a valid delivery status", d))
	}
	if _, ok := getDeliveryStatusStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery_status",
			fmt.Errorf("%d is not a valid delivery status", d))
	}
	return nil
}

// IsTerminal reports whether no further delivery transition is permitted.
func (d DeliveryStatus) IsTerminal() bool {
	return d == DeliveryDelivered || d == DeliveryCancelled
}

// CanTransitionTo reports whether the edge d -> target is permitted.
func (d DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	for _, allowed := range getDeliveryTransitions()[d] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge d -> target and returns the new status.
// Returns an InvalidStateTransitionError if the edge is not permitted.
func (d DeliveryStatus) TransitionTo(target DeliveryStatus) (DeliveryStatus, error) {
	if err := target.Validate(); err != nil {
		return DeliveryUnknown, err
	}
	if !d.CanTransitionTo(target) {
		return DeliveryUnknown, errs.NewInvalidStateTransitionError(d.String(), target.String())
	}
	return target, nil
}
