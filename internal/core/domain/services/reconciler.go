package services

import (
	"fulfillment/internal/core/domain/model/mirror"
	"fulfillment/internal/core/domain/model/order"
)

// Reconciler is a domain service that checks a canonical order against its
// fulfillment mirror and reports any divergence.
//
// Business rules:
//   - Only custom orders carry a mirror; catalog orders are skipped
//   - A missing mirror for a custom order is itself a divergence
//   - Reconciliation detects and reports, it never corrects either side
type Reconciler struct{}

// NewReconciler creates a new Reconciler instance.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// Check compares a canonical order with its mirror record. A nil record for
// a custom order produces a single "record" divergence; catalog orders
// always reconcile clean.
func (r Reconciler) Check(o *order.Order, rec *mirror.FulfillmentRecord) ([]mirror.Divergence, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Kind() != order.KindCustom {
		return nil, nil
	}

	if rec == nil {
		return []mirror.Divergence{{
			OrderID:   o.ID(),
			Field:     "record",
			Canonical: o.Status().String(),
			Mirror:    "missing",
		}}, nil
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec.Compare(o), nil
}
