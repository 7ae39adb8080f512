package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the same
// transaction, so an order and its mirror commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// CancellationRepository returns a CancellationRepository bound to the
	// current transaction.
	CancellationRepository() CancellationRepository

	// RefundRepository returns a RefundRepository bound to the current
	// transaction.
	RefundRepository() RefundRepository

	// ScheduleRepository returns a ScheduleRepository bound to the current
	// transaction.
	ScheduleRepository() ScheduleRepository

	// MirrorRepository returns a MirrorRepository bound to the current
	// transaction.
	MirrorRepository() MirrorRepository

	// ReconciliationRepository returns a ReconciliationRepository bound to
	// the current transaction.
	ReconciliationRepository() ReconciliationRepository
}
