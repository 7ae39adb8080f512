// Package order contains the Order aggregate and the lifecycle state
// machine of the fulfillment domain.
//
// The canonical status, the payment sub-state, and the delivery sub-state
// each have a tagged enum with a single transition table; every mutating
// path consults those tables through methods on Order. Guards (role checks,
// transition checks, version checks) always run before any field changes,
// so a returned error means the aggregate is untouched.
package order
