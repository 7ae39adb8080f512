package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestCancellationCommandIsNotConstructed = errors.New(
	"RequestCancellationCommand must be created via NewRequestCancellationCommand constructor",
)

// RequestCancellationCommand represents a customer asking to cancel an
// order. The order moves to the cancel-requested state and waits for an
// admin decision.
type RequestCancellationCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	orderID   kernel.UUID
	reason    string
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewRequestCancellationCommand creates a command to open a cancellation
// request. The reason is required.
func NewRequestCancellationCommand(
	requestID kernel.UUID,
	orderID kernel.UUID,
	reason string,
	actor kernel.Actor,
) (RequestCancellationCommand, error) {
	cmd := RequestCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
		cmd.setActor(actor),
	); err != nil {
		return RequestCancellationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancellationCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancellationCommandIsNotConstructed)
}

// RequestID returns the identifier for the new request.
func (c RequestCancellationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrderID returns the order to cancel.
func (c RequestCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the customer's stated reason.
func (c RequestCancellationCommand) Reason() string {
	return c.reason
}

// Actor returns the requesting actor.
func (c RequestCancellationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *RequestCancellationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RequestCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestCancellationCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *RequestCancellationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
