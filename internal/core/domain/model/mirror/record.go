// Package mirror contains the fulfillment record: the denormalized mirror of
// a custom order kept for the production workshop. Mirrors are written in
// the same transaction as the canonical order; divergence between the two is
// detected by reconciliation and flagged, never silently corrected.
package mirror

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrRecordIsNotConstructed is returned when a FulfillmentRecord was not
// created through NewFulfillmentRecord or RestoreFulfillmentRecord.
var ErrRecordIsNotConstructed = errors.New("FulfillmentRecord must be created via NewFulfillmentRecord or RestoreFulfillmentRecord")

// FulfillmentRecord mirrors the workshop-relevant fields of a custom order.
// The canonical order is always authoritative; the record never drives
// transitions.
type FulfillmentRecord struct {
	orderID        kernel.UUID
	status         order.Status
	paymentStatus  order.PaymentStatus
	deliveryStatus order.DeliveryStatus
	version        int
	syncedAt       time.Time
	isConstructed  bool
}

// NewFulfillmentRecord creates a mirror record from a canonical order.
func NewFulfillmentRecord(o *order.Order) (*FulfillmentRecord, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	r := &FulfillmentRecord{orderID: o.ID(), isConstructed: true}
	r.SyncFrom(o)
	return r, nil
}

// RestoreFulfillmentRecord reconstructs a record from persistence.
func RestoreFulfillmentRecord(
	orderID kernel.UUID,
	status order.Status,
	paymentStatus order.PaymentStatus,
	deliveryStatus order.DeliveryStatus,
	version int,
	syncedAt time.Time,
) (*FulfillmentRecord, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &FulfillmentRecord{
		orderID:        orderID,
		status:         status,
		paymentStatus:  paymentStatus,
		deliveryStatus: deliveryStatus,
		version:        version,
		syncedAt:       syncedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the record was properly constructed.
func (r *FulfillmentRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// OrderID returns the mirrored order.
func (r *FulfillmentRecord) OrderID() kernel.UUID { return r.orderID }

// Status returns the mirrored order status.
func (r *FulfillmentRecord) Status() order.Status { return r.status }

// PaymentStatus returns the mirrored payment status.
func (r *FulfillmentRecord) PaymentStatus() order.PaymentStatus { return r.paymentStatus }

// DeliveryStatus returns the mirrored delivery status.
func (r *FulfillmentRecord) DeliveryStatus() order.DeliveryStatus { return r.deliveryStatus }

// Version returns the mirrored order version.
func (r *FulfillmentRecord) Version() int { return r.version }

// SyncedAt returns the time of the last sync from the canonical order.
func (r *FulfillmentRecord) SyncedAt() time.Time { return r.syncedAt }

// SyncFrom copies the mirrored fields from the canonical order.
func (r *FulfillmentRecord) SyncFrom(o *order.Order) {
	r.status = o.Status()
	r.paymentStatus = o.PaymentStatus()
	r.deliveryStatus = o.DeliveryStatus()
	r.version = o.Version()
	r.syncedAt = time.Now().UTC()
}

// Divergence names one field where a mirror disagrees with its canonical
// order.
type Divergence struct {
	OrderID   kernel.UUID
	Field     string
	Canonical string
	Mirror    string
}

// Compare reports every field where the record disagrees with the canonical
// order. An empty slice means the pair is consistent.
func (r *FulfillmentRecord) Compare(o *order.Order) []Divergence {
	var out []Divergence

	if r.status != o.Status() {
		out = append(out, Divergence{
			OrderID:   r.orderID,
			Field:     "status",
			Canonical: o.Status().String(),
			Mirror:    r.status.String(),
		})
	}
	if r.paymentStatus != o.PaymentStatus() {
		out = append(out, Divergence{
			OrderID:   r.orderID,
			Field:     "payment_status",
			Canonical: o.PaymentStatus().String(),
			Mirror:    r.paymentStatus.String(),
		})
	}
	if r.deliveryStatus != o.DeliveryStatus() {
		out = append(out, Divergence{
			OrderID:   r.orderID,
			Field:     "delivery_status",
			Canonical: o.DeliveryStatus().String(),
			Mirror:    r.deliveryStatus.String(),
		})
	}

	return out
}
