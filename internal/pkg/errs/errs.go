package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classify every failure the fulfillment core can produce.
// Callers match on these with errors.Is; the typed errors below carry the
// details and unwrap to their sentinel.
var (
	// ErrValueIsRequired indicates a required value was missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates a malformed or out-of-domain value.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrObjectNotFound indicates a lookup by identifier failed.
	ErrObjectNotFound = errors.New("object not found")

	// ErrUnauthorized indicates the acting role does not permit the operation.
	ErrUnauthorized = errors.New("operation is not permitted for role")

	// ErrInvalidStateTransition indicates the requested transition is not in
	// the lifecycle transition table.
	ErrInvalidStateTransition = errors.New("state transition is not allowed")

	// ErrConflict indicates the caller presented a stale version and must
	// re-fetch and retry.
	ErrConflict = errors.New("version conflict")

	// ErrAlreadyPending indicates an open request of the same kind already
	// exists for the order.
	ErrAlreadyPending = errors.New("a pending request already exists")

	// ErrAlreadyScheduled indicates the order already has an active
	// delivery schedule.
	ErrAlreadyScheduled = errors.New("an active delivery schedule already exists")

	// ErrNotCancellable indicates the order is in a terminal state and can
	// no longer be cancelled.
	ErrNotCancellable = errors.New("order is no longer cancellable")

	// ErrNotReassignable indicates courier reassignment is not permitted in
	// the current delivery state.
	ErrNotReassignable = errors.New("courier is no longer reassignable")

	// ErrInvalidAmount indicates a refund amount above the order total.
	ErrInvalidAmount = errors.New("amount is invalid")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError is returned when a required parameter is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a parameter fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError is returned when a lookup by identifier yields nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// UnauthorizedError is returned when the acting role may not perform an operation.
type UnauthorizedError struct {
	Operation string
	Role      string
}

// NewUnauthorizedError creates an UnauthorizedError for the operation and role.
func NewUnauthorizedError(operation string, role string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Role: role}
}

func (e *UnauthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s requires a different role than %s",
		ErrUnauthorized, e.Operation, e.Role))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidStateTransitionError is returned when a lifecycle edge is not in
// the transition table.
type InvalidStateTransitionError struct {
	From string
	To   string
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for the rejected edge.
func NewInvalidStateTransitionError(from string, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{From: from, To: to}
}

func (e *InvalidStateTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidStateTransition, e.From, e.To))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// VersionConflictError is returned when a writer presents a version that no
// longer matches the stored record.
type VersionConflictError struct {
	Presented int
	Actual    int
}

// NewVersionConflictError creates a VersionConflictError with both versions.
func NewVersionConflictError(presented int, actual int) *VersionConflictError {
	return &VersionConflictError{Presented: presented, Actual: actual}
}

func (e *VersionConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: presented version %d, actual version %d",
		ErrConflict, e.Presented, e.Actual))
}

func (e *VersionConflictError) Unwrap() error {
	return ErrConflict
}

// AlreadyPendingError is returned when an order already carries an open request.
type AlreadyPendingError struct {
	OrderID string
}

// NewAlreadyPendingError creates an AlreadyPendingError for the order.
func NewAlreadyPendingError(orderID string) *AlreadyPendingError {
	return &AlreadyPendingError{OrderID: orderID}
}

func (e *AlreadyPendingError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s", ErrAlreadyPending, e.OrderID))
}

func (e *AlreadyPendingError) Unwrap() error {
	return ErrAlreadyPending
}

// AlreadyScheduledError is returned when an order already has an active schedule.
type AlreadyScheduledError struct {
	OrderID string
}

// NewAlreadyScheduledError creates an AlreadyScheduledError for the order.
func NewAlreadyScheduledError(orderID string) *AlreadyScheduledError {
	return &AlreadyScheduledError{OrderID: orderID}
}

func (e *AlreadyScheduledError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s", ErrAlreadyScheduled, e.OrderID))
}

func (e *AlreadyScheduledError) Unwrap() error {
	return ErrAlreadyScheduled
}

// NotCancellableError is returned when cancellation is requested against a
// terminal order state.
type NotCancellableError struct {
	OrderID string
	Status  string
}

// NewNotCancellableError creates a NotCancellableError for the order and its status.
func NewNotCancellableError(orderID string, status string) *NotCancellableError {
	return &NotCancellableError{OrderID: orderID, Status: status}
}

func (e *NotCancellableError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s is %s", ErrNotCancellable, e.OrderID, e.Status))
}

func (e *NotCancellableError) Unwrap() error {
	return ErrNotCancellable
}

// NotReassignableError is returned when courier reassignment is attempted
// outside the scheduled delivery state.
type NotReassignableError struct {
	OrderID string
	Status  string
}

// NewNotReassignableError creates a NotReassignableError for the order and delivery status.
func NewNotReassignableError(orderID string, status string) *NotReassignableError {
	return &NotReassignableError{OrderID: orderID, Status: status}
}

func (e *NotReassignableError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s delivery is %s", ErrNotReassignable, e.OrderID, e.Status))
}

func (e *NotReassignableError) Unwrap() error {
	return ErrNotReassignable
}

// InvalidAmountError is returned when a refund amount exceeds the order total.
type InvalidAmountError struct {
	Requested int64
	Limit     int64
}

// NewInvalidAmountError creates an InvalidAmountError with the requested amount and its limit.
func NewInvalidAmountError(requested int64, limit int64) *InvalidAmountError {
	return &InvalidAmountError{Requested: requested, Limit: limit}
}

func (e *InvalidAmountError) Error() string {
	return sanitize(fmt.Sprintf("%s: requested %d, limit %d", ErrInvalidAmount, e.Requested, e.Limit))
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}
