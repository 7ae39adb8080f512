package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReviewDesignCommandIsNotConstructed = errors.New(
	"ReviewDesignCommand must be created via NewReviewDesignCommand constructor",
)

// ReviewDesignCommand represents an admin decision on a custom order's
// design. Approval moves the order towards payment; rejection sends it back
// to the customer for another draft.
type ReviewDesignCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	approve bool
	actor   kernel.Actor
	version int

	guard guard.ConstructorGuard
}

// NewReviewDesignCommand creates a command to record a design decision.
// A version of 0 skips the optimistic concurrency check.
func NewReviewDesignCommand(
	orderID kernel.UUID,
	approve bool,
	actor kernel.Actor,
	version int,
) (ReviewDesignCommand, error) {
	cmd := ReviewDesignCommand{
		approve: approve,
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ReviewDesignCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewDesignCommand) Validate() error {
	return c.guard.Validate(ErrReviewDesignCommandIsNotConstructed)
}

// OrderID returns the order under review.
func (c ReviewDesignCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Approve reports whether the design was approved.
func (c ReviewDesignCommand) Approve() bool {
	return c.approve
}

// Actor returns the reviewing actor.
func (c ReviewDesignCommand) Actor() kernel.Actor {
	return c.actor
}

// Version returns the version the caller last observed, 0 if unchecked.
func (c ReviewDesignCommand) Version() int {
	return c.version
}

func (c *ReviewDesignCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReviewDesignCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
