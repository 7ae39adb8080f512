// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows, and
// flushes the aggregate's pending audit entries alongside the order row.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Statuses are stored in their string form so rows stay readable
// and queries do not depend on enum numbering.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind           string    `gorm:"type:varchar(16);index"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount    int64
	DesignBrief    string `gorm:"type:text"`
	Status         string `gorm:"type:varchar(32);index"`
	PaymentStatus  string `gorm:"type:varchar(16)"`
	DeliveryStatus string `gorm:"type:varchar(16)"`
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AuditEntryDTO represents one row of an order's audit trail.
type AuditEntryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ActorID         uuid.UUID `gorm:"type:uuid"`
	ActorRole       string    `gorm:"type:varchar(16)"`
	FromStatus      string    `gorm:"type:varchar(32)"`
	ToStatus        string    `gorm:"type:varchar(32)"`
	Decision        string    `gorm:"type:varchar(32)"`
	PreviousPayment string    `gorm:"type:varchar(16)"`
	RecordedAt      time.Time
}

// TableName specifies the database table name for audit entries.
func (AuditEntryDTO) TableName() string {
	return "order_audit"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		Kind:           aggregate.Kind().String(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		TotalAmount:    aggregate.Total().Amount(),
		DesignBrief:    aggregate.DesignBrief(),
		Status:         aggregate.Status().String(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		DeliveryStatus: aggregate.DeliveryStatus().String(),
		Version:        aggregate.Version(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	kind, err := order.KindFromString(dto.Kind)
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

	return order.RestoreOrder(
		id,
		kind,
		customerID,
		total,
		dto.DesignBrief,
		status,
		paymentStatus,
		deliveryStatus,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func auditFromDomain(entry order.AuditEntry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:              entry.ID.Bytes(),
		OrderID:         entry.OrderID.Bytes(),
		ActorID:         entry.ActorID.Bytes(),
		ActorRole:       entry.ActorRole.String(),
		FromStatus:      entry.FromStatus.String(),
		ToStatus:        entry.ToStatus.String(),
		Decision:        entry.Decision,
		PreviousPayment: entry.PreviousPayment.String(),
		RecordedAt:      entry.RecordedAt,
	}
}

func auditToDomain(dto AuditEntryDTO) (order.AuditEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.AuditEntry{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.AuditEntry{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.AuditEntry{}, err
	}

	role, err := kernel.RoleFromString(dto.ActorRole)
	if err != nil {
		return order.AuditEntry{}, err
	}

	fromStatus, err := order.StatusFromString(dto.FromStatus)
	if err != nil {
		return order.AuditEntry{}, err
	}

	toStatus, err := order.StatusFromString(dto.ToStatus)
	if err != nil {
		return order.AuditEntry{}, err
	}

	previousPayment, err := order.PaymentStatusFromString(dto.PreviousPayment)
	if err != nil {
		return order.AuditEntry{}, err
	}

	return order.AuditEntry{
		ID:              id,
		OrderID:         orderID,
		ActorID:         actorID,
		ActorRole:       role,
		FromStatus:      fromStatus,
		ToStatus:        toStatus,
		Decision:        dto.Decision,
		PreviousPayment: previousPayment,
		RecordedAt:      dto.RecordedAt,
	}, nil
}
