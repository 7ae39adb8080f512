package mirrorrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mirror"
	"fulfillment/internal/pkg/errs"
)

// GormMirrorRepository implements MirrorRepository using GORM.
type GormMirrorRepository struct {
	db *gorm.DB
}

// NewGormMirrorRepository creates a new GORM mirror record repository.
func NewGormMirrorRepository(db *gorm.DB) *GormMirrorRepository {
	return &GormMirrorRepository{db: db}
}

// Add saves a new mirror record to the database.
func (r *GormMirrorRepository) Add(ctx context.Context, aggregate *mirror.FulfillmentRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := recordFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update overwrites the mirror record for an order.
func (r *GormMirrorRepository) Update(ctx context.Context, aggregate *mirror.FulfillmentRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := recordFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&FulfillmentRecordDTO{}).
		Where("order_id = ?", dto.OrderID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("fulfillment record", aggregate.OrderID().String())
	}

	return nil
}

// GetByOrder retrieves the mirror record for an order.
func (r *GormMirrorRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*mirror.FulfillmentRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto FulfillmentRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fulfillment record", orderID.String())
		}
		return nil, err
	}

	return recordToDomain(dto)
}

// GormReconciliationRepository implements ReconciliationRepository using GORM.
type GormReconciliationRepository struct {
	db *gorm.DB
}

// NewGormReconciliationRepository creates a new GORM reconciliation flag
// repository.
func NewGormReconciliationRepository(db *gorm.DB) *GormReconciliationRepository {
	return &GormReconciliationRepository{db: db}
}

// Add saves a new reconciliation flag to the database.
func (r *GormReconciliationRepository) Add(ctx context.Context, aggregate *mirror.ReconciliationFlag) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := flagFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll retrieves the most recent reconciliation flags.
func (r *GormReconciliationRepository) GetAll(
	ctx context.Context,
	limit int,
) ([]*mirror.ReconciliationFlag, error) {
	var dtos []ReconciliationFlagDTO
	query := r.db.WithContext(ctx).Order("detected_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	flags := make([]*mirror.ReconciliationFlag, 0, len(dtos))
	for _, dto := range dtos {
		flag, err := flagToDomain(dto)
		if err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}

	return flags, nil
}
