// Package kernel contains the shared value objects of the fulfillment domain:
// UUID identifiers, monetary amounts, and authenticated actors. All types are
// immutable, validated at construction, and safe for concurrent use.
package kernel
