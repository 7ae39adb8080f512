// Package mirrorrepo persists fulfillment mirror records and the
// reconciliation flags raised against them.
package mirrorrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mirror"
	"fulfillment/internal/core/domain/model/order"
)

// FulfillmentRecordDTO represents a mirror record row. One row per custom
// order, keyed by the order ID.
type FulfillmentRecordDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status         string    `gorm:"type:varchar(32)"`
	PaymentStatus  string    `gorm:"type:varchar(32)"`
	DeliveryStatus string    `gorm:"type:varchar(32)"`
	Version        int
	SyncedAt       time.Time
}

// TableName specifies the database table name for mirror records.
func (FulfillmentRecordDTO) TableName() string {
	return "fulfillment_records"
}

// ReconciliationFlagDTO represents a recorded divergence between the
// canonical order and its mirror.
type ReconciliationFlagDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Field          string    `gorm:"type:varchar(32)"`
	CanonicalValue string    `gorm:"type:varchar(64)"`
	MirrorValue    string    `gorm:"type:varchar(64)"`
	DetectedAt     time.Time
}

// TableName specifies the database table name for reconciliation flags.
func (ReconciliationFlagDTO) TableName() string {
	return "reconciliation_flags"
}

func recordFromDomain(aggregate *mirror.FulfillmentRecord) FulfillmentRecordDTO {
	return FulfillmentRecordDTO{
		OrderID:        aggregate.OrderID().Bytes(),
		Status:         aggregate.Status().String(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		DeliveryStatus: aggregate.DeliveryStatus().String(),
		Version:        aggregate.Version(),
		SyncedAt:       aggregate.SyncedAt(),
	}
}

func recordToDomain(dto FulfillmentRecordDTO) (*mirror.FulfillmentRecord, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := order.DeliveryStatusFromString(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	return mirror.RestoreFulfillmentRecord(
		orderID,
		status,
		paymentStatus,
		deliveryStatus,
		dto.Version,
		dto.SyncedAt,
	)
}

func flagFromDomain(aggregate *mirror.ReconciliationFlag) ReconciliationFlagDTO {
	return ReconciliationFlagDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		Field:          aggregate.Field(),
		CanonicalValue: aggregate.Canonical(),
		MirrorValue:    aggregate.Mirror(),
		DetectedAt:     aggregate.DetectedAt(),
	}
}

func flagToDomain(dto ReconciliationFlagDTO) (*mirror.ReconciliationFlag, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return mirror.RestoreReconciliationFlag(
		id,
		orderID,
		dto.Field,
		dto.CanonicalValue,
		dto.MirrorValue,
		dto.DetectedAt,
	)
}
