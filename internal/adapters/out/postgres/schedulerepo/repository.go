package schedulerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GormScheduleRepository implements ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db *gorm.DB
}

// NewGormScheduleRepository creates a new GORM delivery schedule repository.
func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

// Add saves a new delivery schedule to the database.
func (r *GormScheduleRepository) Add(ctx context.Context, aggregate *delivery.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing delivery schedule.
func (r *GormScheduleRepository) Update(ctx context.Context, aggregate *delivery.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ScheduleDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery schedule", aggregate.ID().String())
	}

	return nil
}

// GetByOrder retrieves the delivery schedule for an order.
func (r *GormScheduleRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Schedule, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery schedule", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
