package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrResolveCancellationCommandIsNotConstructed = errors.New(
	"ResolveCancellationCommand must be created via NewResolveCancellationCommand constructor",
)

// ResolveCancellationCommand represents an admin decision on a pending
// cancellation request. Approval cancels the order; denial restores the
// status it held when the request was opened.
type ResolveCancellationCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	approve   bool
	notes     string
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewResolveCancellationCommand creates a command to resolve a cancellation
// request.
func NewResolveCancellationCommand(
	requestID kernel.UUID,
	approve bool,
	notes string,
	actor kernel.Actor,
) (ResolveCancellationCommand, error) {
	cmd := ResolveCancellationCommand{
		approve: approve,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActor(actor),
	); err != nil {
		return ResolveCancellationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveCancellationCommand) Validate() error {
	return c.guard.Validate(ErrResolveCancellationCommandIsNotConstructed)
}

// RequestID returns the request being resolved.
func (c ResolveCancellationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Approve reports whether the cancellation was granted.
func (c ResolveCancellationCommand) Approve() bool {
	return c.approve
}

// Notes returns the resolver's notes.
func (c ResolveCancellationCommand) Notes() string {
	return c.notes
}

// Actor returns the resolving actor.
func (c ResolveCancellationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ResolveCancellationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ResolveCancellationCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
