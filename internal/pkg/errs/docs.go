// Package errs provides the standardized error taxonomy for the fulfillment
// application. Every failure the core can produce is classified by one of the
// sentinel errors; typed error structs carry the details and unwrap to their
// sentinel so callers can match with errors.Is.
//
// The taxonomy covers validation (ValueIsRequiredError, ValueIsInvalidError),
// lookups (ObjectNotFoundError), authorization (UnauthorizedError), lifecycle
// guards (InvalidStateTransitionError, NotCancellableError,
// NotReassignableError, AlreadyPendingError, AlreadyScheduledError,
// InvalidAmountError) and optimistic concurrency (VersionConflictError).
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for single-line formatting
//   - Unwrap() method resolving to the sentinel
//
// Guard failures are detected before any write, so an error from this package
// always means the record is unchanged. Unexpected persistence failures are
// never mapped into this taxonomy; they surface as-is and the transport layer
// reports them as a generic internal failure.
package errs
