package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

type requestCancellationRequest struct {
	Reason string `json:"reason"`
}

// RequestCancellation handles POST /api/v1/orders/:id/cancellation.
func (s *Server) RequestCancellation(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body requestCancellationRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewRequestCancellationCommand(requestID, orderID, body.Reason, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.requestCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"request_id": requestID.String()})
}

type resolveRequest struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

// ResolveCancellation handles POST /api/v1/cancellations/:id/resolve.
func (s *Server) ResolveCancellation(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body resolveRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewResolveCancellationCommand(requestID, body.Approve, body.Notes, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.resolveCancellationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx)
}

type requestRefundRequest struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// RequestRefund handles POST /api/v1/orders/:id/refund.
func (s *Server) RequestRefund(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body requestRefundRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	amount, err := kernel.NewMoney(body.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewRequestRefundCommand(requestID, orderID, amount, body.Reason, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.requestRefundHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"request_id": requestID.String()})
}

// ResolveRefund handles POST /api/v1/refunds/:id/resolve.
func (s *Server) ResolveRefund(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body resolveRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewResolveRefundCommand(requestID, body.Approve, body.Notes, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.resolveRefundHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx)
}

type cancellationRequestResponse struct {
	ID            string     `json:"id"`
	OrderID       string     `json:"order_id"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	PriorStatus   string     `json:"prior_status"`
	RequestedAt   time.Time  `json:"requested_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	ResolverNotes string     `json:"resolver_notes,omitempty"`
}

// ListCancellations handles GET /api/v1/orders/:id/cancellations.
func (s *Server) ListCancellations(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	pendingOnly := ctx.QueryParam("pending") == "true"

	query := queries.NewListCancellationRequestsQuery(orderID, pendingOnly)
	results, err := s.listCancellationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]cancellationRequestResponse, len(results))
	for i, r := range results {
		response[i] = cancellationRequestResponse{
			ID:            r.ID.String(),
			OrderID:       r.OrderID.String(),
			Reason:        r.Reason,
			Status:        r.Status,
			PriorStatus:   r.PriorStatus,
			RequestedAt:   r.RequestedAt,
			ResolvedAt:    r.ResolvedAt,
			ResolverNotes: r.ResolverNotes,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}
