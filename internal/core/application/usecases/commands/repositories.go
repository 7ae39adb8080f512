// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CancellationRepoFactory provides access to the cancellation request
	// repository within a transaction.
	CancellationRepoFactory interface {
		CancellationRepository() ports.CancellationRepository
	}

	// RefundRepoFactory provides access to the refund request repository
	// within a transaction.
	RefundRepoFactory interface {
		RefundRepository() ports.RefundRepository
	}

	// ScheduleRepoFactory provides access to the delivery schedule
	// repository within a transaction.
	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	// MirrorRepoFactory provides access to the fulfillment mirror
	// repository within a transaction.
	MirrorRepoFactory interface {
		MirrorRepository() ports.MirrorRepository
	}

	// ReconciliationRepoFactory provides access to the reconciliation flag
	// repository within a transaction.
	ReconciliationRepoFactory interface {
		ReconciliationRepository() ports.ReconciliationRepository
	}

	// OrderUoW manages transactions for order mutations. The mirror
	// repository rides along so custom orders and their fulfillment
	// records commit together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MirrorRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CancellationUoW manages transactions spanning an order and its
	// cancellation requests.
	CancellationUoW interface {
		TxManager
		OrderRepoFactory
		CancellationRepoFactory
		MirrorRepoFactory
	}

	// CancellationUoWFactory creates new cancellation unit of work
	// instances.
	CancellationUoWFactory interface {
		Create() CancellationUoW
	}

	// RefundUoW manages transactions spanning an order and its refund
	// requests.
	RefundUoW interface {
		TxManager
		OrderRepoFactory
		RefundRepoFactory
		MirrorRepoFactory
	}

	// RefundUoWFactory creates new refund unit of work instances.
	RefundUoWFactory interface {
		Create() RefundUoW
	}

	// ScheduleUoW manages transactions spanning an order and its delivery
	// schedule.
	ScheduleUoW interface {
		TxManager
		OrderRepoFactory
		ScheduleRepoFactory
		MirrorRepoFactory
	}

	// ScheduleUoWFactory creates new schedule unit of work instances.
	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}

	// SweepUoW manages transactions for the reconciliation sweep. The
	// sweep reads orders and mirrors and writes only flags.
	SweepUoW interface {
		TxManager
		OrderRepoFactory
		MirrorRepoFactory
		ReconciliationRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}
)
