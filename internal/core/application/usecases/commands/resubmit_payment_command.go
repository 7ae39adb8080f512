package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrResubmitPaymentCommandIsNotConstructed = errors.New(
	"ResubmitPaymentCommand must be created via NewResubmitPaymentCommand constructor",
)

// ResubmitPaymentCommand represents a customer resubmitting payment after a
// rejection. The order stays awaiting payment; only the payment sub-state
// returns to pending.
type ResubmitPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewResubmitPaymentCommand creates a command to resubmit a rejected payment.
func NewResubmitPaymentCommand(orderID kernel.UUID, actor kernel.Actor) (ResubmitPaymentCommand, error) {
	cmd := ResubmitPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ResubmitPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResubmitPaymentCommand) Validate() error {
	return c.guard.Validate(ErrResubmitPaymentCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c ResubmitPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the resubmitting actor.
func (c ResubmitPaymentCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ResubmitPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResubmitPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
