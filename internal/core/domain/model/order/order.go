package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the fulfillment lifecycle. It owns the
// canonical status, the payment sub-state, and the delivery sub-state, and it
// is the only place transitions are applied: every mutating operation goes
// through a method on Order, which consults the transition table, checks the
// actor's role, increments the version counter, and appends an audit entry.
//
// Invariants:
//   - The delivery sub-state leaves pending only once payment is verified
//   - A custom order cannot reach verified payment before design approval
//     (its statuses only reach the payment gate through DesignApproved)
//   - Custom orders require design metadata at creation
//   - Every applied mutation increments the version counter exactly once
type Order struct {
	id             kernel.UUID
	kind           Kind
	customerID     kernel.UUID
	total          kernel.Money
	designBrief    string
	status         Status
	paymentStatus  PaymentStatus
	deliveryStatus DeliveryStatus
	version        int
	createdAt      time.Time
	updatedAt      time.Time

	// pendingAudit holds entries appended during this in-memory mutation,
	// flushed by the repository together with the order row.
	pendingAudit []AuditEntry

	isConstructed bool
}

// NewOrder creates a new Order. Catalog orders start in AwaitingPayment;
// custom orders start in DesignPending and must carry a design brief.
// Payment and delivery sub-states start pending, the version counter at 1.
func NewOrder(
	id kernel.UUID,
	kind Kind,
	customerID kernel.UUID,
	total kernel.Money,
	designBrief string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		customerID.Validate(),
		total.Validate(),
	); err != nil {
		return nil, err
	}

	status := AwaitingPayment
	if kind == KindCustom {
		if designBrief == "" {
			return nil, errs.NewValueIsRequiredError("designBrief")
		}
		status = DesignPending
	}

	now := time.Now().UTC()
	return &Order{
		id:             id,
		kind:           kind,
		customerID:     customerID,
		total:          total,
		designBrief:    designBrief,
		status:         status,
		paymentStatus:  PaymentPending,
		deliveryStatus: DeliveryPending,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. All fields are
// validated; use it only in repository implementations.
func RestoreOrder(
	id kernel.UUID,
	kind Kind,
	customerID kernel.UUID,
	total kernel.Money,
	designBrief string,
	status Status,
	paymentStatus PaymentStatus,
	deliveryStatus DeliveryStatus,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		customerID.Validate(),
		total.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
		deliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a valid version", version))
	}

	return &Order{
		id:             id,
		kind:           kind,
		customerID:     customerID,
		total:          total,
		designBrief:    designBrief,
		status:         status,
		paymentStatus:  paymentStatus,
		deliveryStatus: deliveryStatus,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Kind returns the order kind.
func (o *Order) Kind() Kind { return o.kind }

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Total returns the order total.
func (o *Order) Total() kernel.Money { return o.total }

// DesignBrief returns the design metadata of a custom order.
// Empty for catalog orders.
func (o *Order) DesignBrief() string { return o.designBrief }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the payment sub-state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// DeliveryStatus returns the delivery sub-state.
func (o *Order) DeliveryStatus() DeliveryStatus { return o.deliveryStatus }

// Version returns the optimistic concurrency version counter.
func (o *Order) Version() int { return o.version }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// PendingAudit returns the audit entries appended by mutations on this
// instance, in order. The repository persists them with the order row.
func (o *Order) PendingAudit() []AuditEntry { return o.pendingAudit }

// CheckVersion compares a caller-presented version against the current one.
// A mismatch means a concurrent writer got there first; the caller must
// re-fetch and retry.
func (o *Order) CheckVersion(presented int) error {
	if presented != o.version {
		return errs.NewVersionConflictError(presented, o.version)
	}
	return nil
}

// TransitionTo drives the order into target on behalf of actor. The edge
// must be in the transition table and the actor's role must satisfy the
// edge's requirement. All guards run before any field changes.
func (o *Order) TransitionTo(target Status, actor kernel.Actor) error {
	return o.apply(target, actor, "", o.paymentStatus)
}

// ReviewDesign records an admin decision on a custom order's design.
// Approval moves the order to DesignApproved, unlocking payment; rejection
// moves it to DesignRejected, from which the customer may resubmit.
func (o *Order) ReviewDesign(approve bool, actor kernel.Actor) error {
	if o.kind != KindCustom {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("design review does not apply to %s orders", o.kind))
	}

	target := DesignApproved
	decision := "design_approved"
	if !approve {
		target = DesignRejected
		decision = "design_rejected"
	}
	return o.apply(target, actor, decision, o.paymentStatus)
}

// VerifyPayment records an admin decision on the payment gate. Verification
// advances the payment sub-state and the order to Confirmed; rejection marks
// the payment rejected and leaves the order awaiting resubmission.
//
// The gate is idempotent under retry: re-invoking with the decision already
// applied returns applied=false and changes nothing. A conflicting decision
// on a resolved gate is an invalid transition.
func (o *Order) VerifyPayment(decision PaymentDecision, actor kernel.Actor) (bool, error) {
	if err := errors.Join(decision.Validate(), actor.Validate()); err != nil {
		return false, err
	}
	if !actor.Role().CanAdminister() {
		return false, errs.NewUnauthorizedError("verify payment", actor.Role().String())
	}

	if o.paymentStatus.IsResolved() {
		if decision.ResultingStatus() == o.paymentStatus {
			return false, nil
		}
		return false, errs.NewInvalidStateTransitionError(
			"payment "+o.paymentStatus.String(), "payment "+decision.ResultingStatus().String())
	}

	// The design gate for custom orders is enforced by the transition
	// table: only DesignApproved and AwaitingPayment have an edge to
	// Confirmed.
	if !o.status.CanTransitionTo(Confirmed) {
		return false, errs.NewInvalidStateTransitionError(o.status.String(), Confirmed.String())
	}

	previous := o.paymentStatus
	if decision == DecisionVerify {
		if err := o.apply(Confirmed, actor, decision.String(), previous); err != nil {
			return false, err
		}
		o.paymentStatus = PaymentVerified
		return true, nil
	}

	o.paymentStatus = PaymentRejected
	o.recordWithoutTransition(actor, decision.String(), previous)
	return true, nil
}

// ResubmitPayment returns a rejected payment to pending so the customer can
// try again. Customer-only.
func (o *Order) ResubmitPayment(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != kernel.RoleCustomer {
		return errs.NewUnauthorizedError("resubmit payment", actor.Role().String())
	}
	if o.paymentStatus != PaymentRejected {
		return errs.NewInvalidStateTransitionError(
			"payment "+o.paymentStatus.String(), "payment "+PaymentPending.String())
	}

	previous := o.paymentStatus
	o.paymentStatus = PaymentPending
	o.recordWithoutTransition(actor, "payment_resubmitted", previous)
	return nil
}

// BeginCancellation moves the order to CancelRequested and returns the
// status it held before, so the cancellation request can restore it on
// denial. Terminal orders are not cancellable; an order already carrying an
// open request reports AlreadyPending.
func (o *Order) BeginCancellation(actor kernel.Actor) (Status, error) {
	if o.status.IsTerminal() || o.status == RefundRequested {
		return StatusUnknown, errs.NewNotCancellableError(o.id.String(), o.status.String())
	}
	if o.status == CancelRequested {
		return StatusUnknown, errs.NewAlreadyPendingError(o.id.String())
	}

	prior := o.status
	if err := o.apply(CancelRequested, actor, "", o.paymentStatus); err != nil {
		return StatusUnknown, err
	}
	return prior, nil
}

// ApproveCancellation finalizes an approved cancellation request. The order
// becomes Cancelled; an active delivery is cancelled with it. A delivery
// still pending stays pending, since it never left that state.
func (o *Order) ApproveCancellation(actor kernel.Actor) error {
	if err := o.apply(Cancelled, actor, "cancellation_approved", o.paymentStatus); err != nil {
		return err
	}
	if o.deliveryStatus != DeliveryPending && !o.deliveryStatus.IsTerminal() {
		o.deliveryStatus = DeliveryCancelled
	}
	return nil
}

// DeclineCancellation restores the status the order held before the
// cancellation request. The operational status is left exactly as it was.
func (o *Order) DeclineCancellation(prior Status, actor kernel.Actor) error {
	if err := errors.Join(prior.Validate(), actor.Validate()); err != nil {
		return err
	}
	if !actor.Role().CanAdminister() {
		return errs.NewUnauthorizedError("resolve cancellation", actor.Role().String())
	}
	if o.status != CancelRequested {
		return errs.NewInvalidStateTransitionError(o.status.String(), prior.String())
	}
	if prior.IsTerminal() || prior == CancelRequested {
		return errs.NewValueIsInvalidErrorWithCause("priorStatus",
			fmt.Errorf("%s cannot be restored", prior))
	}

	from := o.status
	o.status = prior
	o.bump()
	o.pendingAudit = append(o.pendingAudit,
		newAuditEntry(o.id, actor, from, prior, "cancellation_denied", o.paymentStatus))
	return nil
}

// BeginRefund moves a delivered order to RefundRequested. The requested
// amount is bounded by the order total.
func (o *Order) BeginRefund(amount kernel.Money, actor kernel.Actor) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsGreaterThan(o.total) {
		return errs.NewInvalidAmountError(amount.Amount(), o.total.Amount())
	}
	return o.apply(RefundRequested, actor, "", o.paymentStatus)
}

// ApproveRefund finalizes an approved refund request.
func (o *Order) ApproveRefund(actor kernel.Actor) error {
	return o.apply(Refunded, actor, "refund_approved", o.paymentStatus)
}

// DeclineRefund returns a refund-requested order to Delivered.
func (o *Order) DeclineRefund(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Role().CanAdminister() {
		return errs.NewUnauthorizedError("resolve refund", actor.Role().String())
	}
	if o.status != RefundRequested {
		return errs.NewInvalidStateTransitionError(o.status.String(), Delivered.String())
	}

	from := o.status
	o.status = Delivered
	o.bump()
	o.pendingAudit = append(o.pendingAudit,
		newAuditEntry(o.id, actor, from, Delivered, "refund_denied", o.paymentStatus))
	return nil
}

// MarkScheduled records that a delivery schedule was assigned. Delivery may
// leave pending only once payment is verified; the order moves to Scheduled.
func (o *Order) MarkScheduled(actor kernel.Actor) error {
	if o.paymentStatus != PaymentVerified {
		return errs.NewInvalidStateTransitionError(
			"delivery "+o.deliveryStatus.String(), "delivery "+DeliveryScheduled.String())
	}

	newDelivery, err := o.deliveryStatus.TransitionTo(DeliveryScheduled)
	if err != nil {
		return err
	}
	if err = o.apply(Scheduled, actor, "", o.paymentStatus); err != nil {
		return err
	}
	o.deliveryStatus = newDelivery
	return nil
}

// AdvanceDelivery drives the delivery sub-state along its own transition
// table and keeps the canonical status in step (in-transit and delivered map
// onto the matching order statuses; delays and delivery-side cancellations
// leave the canonical status alone).
func (o *Order) AdvanceDelivery(target DeliveryStatus, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Role().CanAdminister() {
		return errs.NewUnauthorizedError("update delivery status", actor.Role().String())
	}

	newDelivery, err := o.deliveryStatus.TransitionTo(target)
	if err != nil {
		return err
	}

	mapped, hasMapping := map[DeliveryStatus]Status{
		DeliveryInTransit: InTransit,
		DeliveryDelivered: Delivered,
	}[target]

	if hasMapping && o.status != mapped {
		if err = o.apply(mapped, actor, "delivery_"+target.String(), o.paymentStatus); err != nil {
			return err
		}
	} else {
		o.recordWithoutTransition(actor, "delivery_"+target.String(), o.paymentStatus)
	}
	o.deliveryStatus = newDelivery
	return nil
}

// apply is the single mutation path for canonical status changes: it runs
// every guard (actor, role, transition table) before touching any field,
// then applies the transition, bumps the version, and appends the audit
// entry.
func (o *Order) apply(target Status, actor kernel.Actor, decision string, previousPayment PaymentStatus) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !o.status.RequiredRoleSatisfied(target, actor.Role()) {
		return errs.NewUnauthorizedError(
			fmt.Sprintf("transition to %s", target), actor.Role().String())
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.bump()
	o.pendingAudit = append(o.pendingAudit,
		newAuditEntry(o.id, actor, from, newStatus, decision, previousPayment))
	return nil
}

// recordWithoutTransition appends an audit entry for a mutation that changes
// sub-state only, leaving the canonical status in place.
func (o *Order) recordWithoutTransition(actor kernel.Actor, decision string, previousPayment PaymentStatus) {
	o.bump()
	o.pendingAudit = append(o.pendingAudit,
		newAuditEntry(o.id, actor, o.status, o.status, decision, previousPayment))
}

func (o *Order) bump() {
	o.version++
	o.updatedAt = time.Now().UTC()
}
