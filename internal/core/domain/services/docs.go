// Package services provides domain services that operate across aggregates
// of the fulfillment system.
//
// The package includes:
//   - Reconciler: compares canonical orders with their fulfillment mirrors
//     and reports divergence for operator review.
//
// Domain services implement logic that does not naturally belong to a single
// aggregate root.
package services
