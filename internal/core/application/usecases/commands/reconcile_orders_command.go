package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrReconcileOrdersCommandIsNotConstructed = errors.New(
	"ReconcileOrdersCommand must be created via NewReconcileOrdersCommand constructor",
)

// ReconcileOrdersCommand triggers a reconciliation sweep over every custom
// order and its fulfillment mirror.
type ReconcileOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileOrdersCommand creates a command to run a reconciliation sweep.
func NewReconcileOrdersCommand() (ReconcileOrdersCommand, error) {
	return ReconcileOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrdersCommandIsNotConstructed)
}
