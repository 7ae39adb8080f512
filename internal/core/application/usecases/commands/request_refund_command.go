package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestRefundCommandIsNotConstructed = errors.New(
	"RequestRefundCommand must be created via NewRequestRefundCommand constructor",
)

// RequestRefundCommand represents a customer asking for a refund on a
// delivered order. The requested amount may not exceed the order total.
type RequestRefundCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	orderID   kernel.UUID
	amount    kernel.Money
	reason    string
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewRequestRefundCommand creates a command to open a refund request.
func NewRequestRefundCommand(
	requestID kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	reason string,
	actor kernel.Actor,
) (RequestRefundCommand, error) {
	cmd := RequestRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
		cmd.setReason(reason),
		cmd.setActor(actor),
	); err != nil {
		return RequestRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRefundCommand) Validate() error {
	return c.guard.Validate(ErrRequestRefundCommandIsNotConstructed)
}

// RequestID returns the identifier for the new request.
func (c RequestRefundCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrderID returns the order to refund.
func (c RequestRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the requested refund amount.
func (c RequestRefundCommand) Amount() kernel.Money {
	return c.amount
}

// Reason returns the customer's stated reason.
func (c RequestRefundCommand) Reason() string {
	return c.reason
}

// Actor returns the requesting actor.
func (c RequestRefundCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *RequestRefundCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RequestRefundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestRefundCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	c.amount = amount
	return nil
}

func (c *RequestRefundCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *RequestRefundCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
