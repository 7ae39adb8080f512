// Package metrics exposes prometheus counters for the fulfillment core.
// Counters are registered via promauto at package load and scraped through
// the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreatedTotal counts successfully created orders by kind.
	OrdersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_orders_created_total",
		Help: "Total number of orders successfully created.",
	},
		[]string{"kind"},
	)

	// OrderTransitionsTotal counts applied lifecycle transitions.
	OrderTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_order_transitions_total",
		Help: "Total number of applied order status transitions.",
	},
		[]string{"to"},
	)

	// PaymentDecisionsTotal counts payment verification outcomes.
	PaymentDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_payment_decisions_total",
		Help: "Total number of recorded payment verification decisions.",
	},
		[]string{"decision"},
	)

	// ReconciliationMismatchesTotal counts mirror divergences flagged by the sweep.
	ReconciliationMismatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_reconciliation_mismatches_total",
		Help: "Total number of canonical/mirror status mismatches flagged.",
	})

	// OperationErrorsTotal counts errors per mutating operation.
	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
