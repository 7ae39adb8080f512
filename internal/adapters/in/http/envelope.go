package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"
)

// envelope is the uniform response wrapper. Successful responses carry data,
// failed ones carry an error descriptor.
type envelope struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *errorResponse `json:"error,omitempty"`
}

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{Success: true, Data: data})
}

func respondOK(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, envelope{Success: true})
}

func respondError(ctx echo.Context, err error) error {
	status, kind := classify(err)
	metrics.OperationErrorsTotal.WithLabelValues(
		ctx.Request().Method + " " + ctx.Path()).Inc()
	return ctx.JSON(status, envelope{
		Success: false,
		Error: &errorResponse{
			Kind:    kind,
			Message: err.Error(),
		},
	})
}

// classify maps the error taxonomy to HTTP status codes and stable kind
// labels clients can branch on.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden, "unauthorized"
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return http.StatusConflict, "invalid_state"
	case errors.Is(err, errs.ErrAlreadyPending):
		return http.StatusConflict, "already_pending"
	case errors.Is(err, errs.ErrAlreadyScheduled):
		return http.StatusConflict, "already_scheduled"
	case errors.Is(err, errs.ErrNotCancellable):
		return http.StatusConflict, "not_cancellable"
	case errors.Is(err, errs.ErrNotReassignable):
		return http.StatusConflict, "not_reassignable"
	case errors.Is(err, errs.ErrInvalidAmount):
		return http.StatusUnprocessableEntity, "invalid_amount"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
