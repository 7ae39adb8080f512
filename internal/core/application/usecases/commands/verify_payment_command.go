package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand represents an admin decision on a submitted payment.
// Verification confirms the order; rejection sends the payment back to the
// customer for resubmission. The decision is idempotent under retry.
//
// Example:
//
//	decision, _ := order.PaymentDecisionFromString("verified")
//	cmd, err := NewVerifyPaymentCommand(orderID, decision, adminActor, observedVersion)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewVerifyPaymentCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment verification failed: %w", err)
//	}
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	decision order.PaymentDecision
	actor    kernel.Actor
	version  int

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a command to record a payment decision.
// A version of 0 skips the optimistic concurrency check.
func NewVerifyPaymentCommand(
	orderID kernel.UUID,
	decision order.PaymentDecision,
	actor kernel.Actor,
	version int,
) (VerifyPaymentCommand, error) {
	cmd := VerifyPaymentCommand{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDecision(decision),
		cmd.setActor(actor),
	); err != nil {
		return VerifyPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// OrderID returns the order whose payment is under review.
func (c VerifyPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Decision returns the payment decision.
func (c VerifyPaymentCommand) Decision() order.PaymentDecision {
	return c.decision
}

// Actor returns the deciding actor.
func (c VerifyPaymentCommand) Actor() kernel.Actor {
	return c.actor
}

// Version returns the version the caller last observed, 0 if unchecked.
func (c VerifyPaymentCommand) Version() int {
	return c.version
}

func (c *VerifyPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyPaymentCommand) setDecision(decision order.PaymentDecision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}

func (c *VerifyPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
