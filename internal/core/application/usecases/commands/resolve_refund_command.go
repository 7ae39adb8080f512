package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrResolveRefundCommandIsNotConstructed = errors.New(
	"ResolveRefundCommand must be created via NewResolveRefundCommand constructor",
)

// ResolveRefundCommand represents an admin decision on a pending refund
// request. Approval marks the order refunded; denial returns it to
// delivered.
type ResolveRefundCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	approve   bool
	notes     string
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewResolveRefundCommand creates a command to resolve a refund request.
func NewResolveRefundCommand(
	requestID kernel.UUID,
	approve bool,
	notes string,
	actor kernel.Actor,
) (ResolveRefundCommand, error) {
	cmd := ResolveRefundCommand{
		approve: approve,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActor(actor),
	); err != nil {
		return ResolveRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveRefundCommand) Validate() error {
	return c.guard.Validate(ErrResolveRefundCommandIsNotConstructed)
}

// RequestID returns the request being resolved.
func (c ResolveRefundCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Approve reports whether the refund was granted.
func (c ResolveRefundCommand) Approve() bool {
	return c.approve
}

// Notes returns the resolver's notes.
func (c ResolveRefundCommand) Notes() string {
	return c.notes
}

// Actor returns the resolving actor.
func (c ResolveRefundCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ResolveRefundCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ResolveRefundCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
