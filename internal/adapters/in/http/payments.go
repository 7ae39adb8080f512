package http

import (
	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

type reviewDesignRequest struct {
	Approve bool `json:"approve"`
	Version int  `json:"version"`
}

// ReviewDesign handles POST /api/v1/orders/:id/design/review.
func (s *Server) ReviewDesign(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body reviewDesignRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewReviewDesignCommand(orderID, body.Approve, actor, body.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reviewDesignHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx)
}

type verifyPaymentRequest struct {
	Decision string `json:"decision"`
	Version  int    `json:"version"`
}

// VerifyPayment handles POST /api/v1/orders/:id/payment/verify.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body verifyPaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	decision, err := order.PaymentDecisionFromString(body.Decision)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewVerifyPaymentCommand(orderID, decision, actor, body.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.verifyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx)
}

// ResubmitPayment handles POST /api/v1/orders/:id/payment/resubmit.
func (s *Server) ResubmitPayment(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	cmd, err := commands.NewResubmitPaymentCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.resubmitPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx)
}
