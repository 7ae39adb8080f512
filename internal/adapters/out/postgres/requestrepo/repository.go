package requestrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/pkg/errs"
)

// GormCancellationRepository implements CancellationRepository using GORM.
type GormCancellationRepository struct {
	db *gorm.DB
}

// NewGormCancellationRepository creates a new GORM cancellation request
// repository.
func NewGormCancellationRepository(db *gorm.DB) *GormCancellationRepository {
	return &GormCancellationRepository{db: db}
}

// Add saves a new cancellation request to the database.
func (r *GormCancellationRepository) Add(ctx context.Context, aggregate *cancellation.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := cancellationFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the resolution of an existing request.
func (r *GormCancellationRepository) Update(ctx context.Context, aggregate *cancellation.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := cancellationFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CancellationRequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cancellation request", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a cancellation request by ID.
func (r *GormCancellationRepository) Get(ctx context.Context, id kernel.UUID) (*cancellation.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CancellationRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cancellation request", id.String())
		}
		return nil, err
	}

	return cancellationToDomain(dto)
}

// GetPendingByOrder retrieves the pending request for an order, if any.
func (r *GormCancellationRepository) GetPendingByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*cancellation.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto CancellationRequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND status = ?", orderID.Bytes(), cancellation.Pending.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending cancellation request", orderID.String())
		}
		return nil, err
	}

	return cancellationToDomain(dto)
}

// GetAllByOrder retrieves the request history of an order, newest first.
func (r *GormCancellationRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*cancellation.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CancellationRequestDTO
	err := r.db.WithContext(ctx).
		Order("requested_at DESC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return cancellationToDomainAll(dtos)
}

func cancellationToDomainAll(dtos []CancellationRequestDTO) ([]*cancellation.Request, error) {
	requests := make([]*cancellation.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := cancellationToDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// GormRefundRepository implements RefundRepository using GORM.
type GormRefundRepository struct {
	db *gorm.DB
}

// NewGormRefundRepository creates a new GORM refund request repository.
func NewGormRefundRepository(db *gorm.DB) *GormRefundRepository {
	return &GormRefundRepository{db: db}
}

// Add saves a new refund request to the database.
func (r *GormRefundRepository) Add(ctx context.Context, aggregate *refund.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := refundFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the resolution of an existing request.
func (r *GormRefundRepository) Update(ctx context.Context, aggregate *refund.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := refundFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RefundRequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("refund request", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a refund request by ID.
func (r *GormRefundRepository) Get(ctx context.Context, id kernel.UUID) (*refund.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RefundRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("refund request", id.String())
		}
		return nil, err
	}

	return refundToDomain(dto)
}

// GetPendingByOrder retrieves the pending request for an order, if any.
func (r *GormRefundRepository) GetPendingByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*refund.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto RefundRequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND status = ?", orderID.Bytes(), refund.Pending.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pending refund request", orderID.String())
		}
		return nil, err
	}

	return refundToDomain(dto)
}
