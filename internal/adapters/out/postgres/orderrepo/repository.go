package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its audit entries to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.flushAudit(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The write is guarded by
// the version column: the row is only touched when its stored version is
// older than the aggregate's, so a concurrent writer cannot be overwritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version < ?", dto.ID, dto.Version).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var stored OrderDTO
		err := r.db.WithContext(ctx).First(&stored, "id = ?", dto.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		if err != nil {
			return err
		}
		return errs.NewVersionConflictError(dto.Version, stored.Version)
	}

	if err := r.flushAudit(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves orders matching the filter, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})

	if filter.Status != order.StatusUnknown {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Kind != order.KindUnknown {
		query = query.Where("kind = ?", filter.Kind.String())
	}
	if filter.CustomerID.Validate() == nil {
		query = query.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	if !filter.CreatedAfter.IsZero() {
		query = query.Where("created_at >= ?", filter.CreatedAfter)
	}
	if !filter.CreatedBefore.IsZero() {
		query = query.Where("created_at < ?", filter.CreatedBefore)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllCustom retrieves every custom order.
func (r *GormOrderRepository) GetAllCustom(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "kind = ?", order.KindCustom.String()).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAuditTrail retrieves the audit entries of an order, oldest first.
func (r *GormOrderRepository) GetAuditTrail(ctx context.Context, orderID kernel.UUID) ([]order.AuditEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AuditEntryDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]order.AuditEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := auditToDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *GormOrderRepository) flushAudit(ctx context.Context, aggregate *order.Order) error {
	pending := aggregate.PendingAudit()
	if len(pending) == 0 {
		return nil
	}

	dtos := make([]AuditEntryDTO, 0, len(pending))
	for _, entry := range pending {
		dtos = append(dtos, auditFromDomain(entry))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
