// Package requestrepo persists cancellation and refund requests. Both share
// the same request/resolution shape and live in this package together.
package requestrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/refund"
)

// CancellationRequestDTO represents a cancellation request row.
type CancellationRequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Reason        string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(16);index"`
	PriorStatus   string    `gorm:"type:varchar(32)"`
	RequestedAt   time.Time
	ResolvedAt    *time.Time
	ResolverID    *uuid.UUID `gorm:"type:uuid"`
	ResolverNotes string     `gorm:"type:text"`
}

// TableName specifies the database table name for cancellation requests.
func (CancellationRequestDTO) TableName() string {
	return "cancellation_requests"
}

// RefundRequestDTO represents a refund request row.
type RefundRequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Amount        int64
	Reason        string `gorm:"type:text"`
	Status        string `gorm:"type:varchar(16);index"`
	RequestedAt   time.Time
	ResolvedAt    *time.Time
	ResolverID    *uuid.UUID `gorm:"type:uuid"`
	ResolverNotes string     `gorm:"type:text"`
}

// TableName specifies the database table name for refund requests.
func (RefundRequestDTO) TableName() string {
	return "refund_requests"
}

func cancellationFromDomain(aggregate *cancellation.Request) CancellationRequestDTO {
	var resolverID *uuid.UUID
	if id := aggregate.ResolverID(); id != nil {
		raw := id.Bytes()
		resolverID = &raw
	}

	return CancellationRequestDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		Reason:        aggregate.Reason(),
		Status:        aggregate.Status().String(),
		PriorStatus:   aggregate.PriorStatus().String(),
		RequestedAt:   aggregate.RequestedAt(),
		ResolvedAt:    aggregate.ResolvedAt(),
		ResolverID:    resolverID,
		ResolverNotes: aggregate.ResolverNotes(),
	}
}

func cancellationToDomain(dto CancellationRequestDTO) (*cancellation.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := cancellation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	priorStatus, err := order.StatusFromString(dto.PriorStatus)
	if err != nil {
		return nil, err
	}

	var resolverID *kernel.UUID
	if dto.ResolverID != nil {
		rID, resolverErr := kernel.UUIDFromBytes((*dto.ResolverID)[:])
		if resolverErr != nil {
			return nil, resolverErr
		}
		resolverID = &rID
	}

	return cancellation.RestoreRequest(
		id,
		orderID,
		dto.Reason,
		status,
		priorStatus,
		dto.RequestedAt,
		dto.ResolvedAt,
		resolverID,
		dto.ResolverNotes,
	)
}

func refundFromDomain(aggregate *refund.Request) RefundRequestDTO {
	var resolverID *uuid.UUID
	if id := aggregate.ResolverID(); id != nil {
		raw := id.Bytes()
		resolverID = &raw
	}

	return RefundRequestDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		Amount:        aggregate.Amount().Amount(),
		Reason:        aggregate.Reason(),
		Status:        aggregate.Status().String(),
		RequestedAt:   aggregate.RequestedAt(),
		ResolvedAt:    aggregate.ResolvedAt(),
		ResolverID:    resolverID,
		ResolverNotes: aggregate.ResolverNotes(),
	}
}

func refundToDomain(dto RefundRequestDTO) (*refund.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := refund.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var resolverID *kernel.UUID
	if dto.ResolverID != nil {
		rID, resolverErr := kernel.UUIDFromBytes((*dto.ResolverID)[:])
		if resolverErr != nil {
			return nil, resolverErr
		}
		resolverID = &rID
	}

	return refund.RestoreRequest(
		id,
		orderID,
		amount,
		dto.Reason,
		status,
		dto.RequestedAt,
		dto.ResolvedAt,
		resolverID,
		dto.ResolverNotes,
	)
}
