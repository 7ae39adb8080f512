// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work scopes a single business transaction and
// hands out repositories bound to it, so the canonical order, its requests,
// its schedule and its mirror record commit or roll back together.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation must use its own unit of work instance. Rollback
// after a successful commit is a no-op.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/mirrorrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/requestrepo"
	"fulfillment/internal/adapters/out/postgres/schedulerepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept around for post-commit processing such as outbox publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the fulfillment
// repositories and tracks aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction if one is active. The repository tracks modified order
// aggregates on this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CancellationRepository returns a cancellation request repository bound to
// the current transaction if one is active.
func (uow *GormUnitOfWork) CancellationRepository() ports.CancellationRepository {
	return requestrepo.NewGormCancellationRepository(uow.conn())
}

// RefundRepository returns a refund request repository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) RefundRepository() ports.RefundRepository {
	return requestrepo.NewGormRefundRepository(uow.conn())
}

// ScheduleRepository returns a delivery schedule repository bound to the
// current transaction if one is active.
func (uow *GormUnitOfWork) ScheduleRepository() ports.ScheduleRepository {
	return schedulerepo.NewGormScheduleRepository(uow.conn())
}

// MirrorRepository returns a mirror record repository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) MirrorRepository() ports.MirrorRepository {
	return mirrorrepo.NewGormMirrorRepository(uow.conn())
}

// ReconciliationRepository returns a reconciliation flag repository bound to
// the current transaction if one is active.
func (uow *GormUnitOfWork) ReconciliationRepository() ports.ReconciliationRepository {
	return mirrorrepo.NewGormReconciliationRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
