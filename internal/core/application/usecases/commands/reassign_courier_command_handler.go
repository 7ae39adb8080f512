package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// ReassignCourierCommandHandler swaps the courier on a scheduled delivery.
// The order's delivery state gates the swap: once the courier is in transit
// the assignment is fixed.
type ReassignCourierCommandHandler struct {
	uowFactory ScheduleUoWFactory
}

// NewReassignCourierCommandHandler creates a handler for courier
// reassignment operations.
func NewReassignCourierCommandHandler(uowFactory ScheduleUoWFactory) ReassignCourierCommandHandler {
	return ReassignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier reassignment command.
func (h *ReassignCourierCommandHandler) Handle(ctx context.Context, cmd ReassignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().CanAdminister() {
		return errs.NewUnauthorizedError("reassign courier", cmd.Actor().Role().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	scheduled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	scheduleRepo := uow.ScheduleRepository()
	schedule, err := scheduleRepo.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = schedule.Reassign(cmd.CourierID(), scheduled.DeliveryStatus()); err != nil {
		return err
	}

	if err = scheduleRepo.Update(ctx, schedule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
