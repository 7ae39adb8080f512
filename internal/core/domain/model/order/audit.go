package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// AuditEntry is one immutable record in an order's audit trail. Every applied
// transition and every payment decision produces an entry; entries are
// appended, never updated.
type AuditEntry struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	ActorID         kernel.UUID
	ActorRole       kernel.Role
	FromStatus      Status
	ToStatus        Status
	Decision        string
	PreviousPayment PaymentStatus
	RecordedAt      time.Time
}

func newAuditEntry(
	orderID kernel.UUID,
	actor kernel.Actor,
	from Status,
	to Status,
	decision string,
	previousPayment PaymentStatus,
) AuditEntry {
	return AuditEntry{
		ID:              kernel.NewUUID(),
		OrderID:         orderID,
		ActorID:         actor.ID(),
		ActorRole:       actor.Role(),
		FromStatus:      from,
		ToStatus:        to,
		Decision:        decision,
		PreviousPayment: previousPayment,
		RecordedAt:      time.Now().UTC(),
	}
}
