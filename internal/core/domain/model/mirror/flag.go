package mirror

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrFlagIsNotConstructed is returned when a ReconciliationFlag was not
// created through NewReconciliationFlag or RestoreReconciliationFlag.
var ErrFlagIsNotConstructed = errors.New("ReconciliationFlag must be created via NewReconciliationFlag or RestoreReconciliationFlag")

// ReconciliationFlag is a persisted divergence found by a reconciliation
// sweep. Flags are advisory: the sweep records them for operator review and
// never mutates the order or the mirror.
type ReconciliationFlag struct {
	id            kernel.UUID
	orderID       kernel.UUID
	field         string
	canonical     string
	mirror        string
	detectedAt    time.Time
	isConstructed bool
}

// NewReconciliationFlag creates a flag from a detected divergence.
func NewReconciliationFlag(id kernel.UUID, d Divergence) (*ReconciliationFlag, error) {
	if err := errors.Join(id.Validate(), d.OrderID.Validate()); err != nil {
		return nil, err
	}

	return &ReconciliationFlag{
		id:            id,
		orderID:       d.OrderID,
		field:         d.Field,
		canonical:     d.Canonical,
		mirror:        d.Mirror,
		detectedAt:    time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreReconciliationFlag reconstructs a flag from persistence.
func RestoreReconciliationFlag(
	id kernel.UUID,
	orderID kernel.UUID,
	field string,
	canonical string,
	mirror string,
	detectedAt time.Time,
) (*ReconciliationFlag, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	return &ReconciliationFlag{
		id:            id,
		orderID:       orderID,
		field:         field,
		canonical:     canonical,
		mirror:        mirror,
		detectedAt:    detectedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the flag was properly constructed.
func (f *ReconciliationFlag) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFlagIsNotConstructed
	}
	return nil
}

// ID returns the flag identifier.
func (f *ReconciliationFlag) ID() kernel.UUID { return f.id }

// OrderID returns the divergent order.
func (f *ReconciliationFlag) OrderID() kernel.UUID { return f.orderID }

// Field returns the divergent field name.
func (f *ReconciliationFlag) Field() string { return f.field }

// Canonical returns the canonical side's value.
func (f *ReconciliationFlag) Canonical() string { return f.canonical }

// Mirror returns the mirror side's value.
func (f *ReconciliationFlag) Mirror() string { return f.mirror }

// DetectedAt returns when the sweep found the divergence.
func (f *ReconciliationFlag) DetectedAt() time.Time { return f.detectedAt }
