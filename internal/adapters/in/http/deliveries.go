package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

type scheduleDeliveryRequest struct {
	SlotStart time.Time `json:"slot_start"`
	SlotEnd   time.Time `json:"slot_end"`
	CourierID string    `json:"courier_id"`
	Version   int       `json:"version"`
}

// ScheduleDelivery handles POST /api/v1/orders/:id/delivery/schedule.
func (s *Server) ScheduleDelivery(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body scheduleDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("courier_id"))
	}

	slot, err := delivery.NewTimeSlot(body.SlotStart, body.SlotEnd)
	if err != nil {
		return respondError(ctx, err)
	}

	scheduleID := kernel.NewUUID()
	cmd, err := commands.NewScheduleDeliveryCommand(scheduleID, orderID, slot, courierID, actor, body.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.scheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx)
}

type updateDeliveryStatusRequest struct {
	Target  string `json:"target"`
	Version int    `json:"version"`
}

// UpdateDeliveryStatus handles POST /api/v1/orders/:id/delivery/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body updateDeliveryStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	target, err := order.DeliveryStatusFromString(body.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, target, actor, body.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx)
}

type reassignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// ReassignCourier handles POST /api/v1/orders/:id/delivery/courier.
func (s *Server) ReassignCourier(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body reassignCourierRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("courier_id"))
	}

	cmd, err := commands.NewReassignCourierCommand(orderID, courierID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reassignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx)
}
