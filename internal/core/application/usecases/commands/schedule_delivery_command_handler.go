package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"
)

// ScheduleDeliveryCommandHandler books a delivery window and courier for a
// paid order. The schedule and the order's move to the scheduled state
// commit together.
type ScheduleDeliveryCommandHandler struct {
	uowFactory ScheduleUoWFactory
	notifier   ports.Notifier
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery
// scheduling operations.
func NewScheduleDeliveryCommandHandler(
	uowFactory ScheduleUoWFactory,
	notifier ports.Notifier,
) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery scheduling command.
func (h *ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduleRepository()
	if _, err := scheduleRepo.GetByOrder(ctx, cmd.OrderID()); err == nil {
		return errs.NewAlreadyScheduledError(cmd.OrderID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	orderRepo := uow.OrderRepository()
	scheduled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Version() > 0 {
		if err = scheduled.CheckVersion(cmd.Version()); err != nil {
			return err
		}
	}

	from := scheduled.Status()
	if err = scheduled.MarkScheduled(cmd.Actor()); err != nil {
		return err
	}

	schedule, err := delivery.NewSchedule(cmd.ScheduleID(), scheduled.ID(), cmd.Slot(), cmd.CourierID())
	if err != nil {
		return err
	}

	if err = scheduleRepo.Add(ctx, schedule); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, scheduled); err != nil {
		return err
	}

	if err = syncMirror(ctx, uow.MirrorRepository(), scheduled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(scheduled.Status().String()).Inc()
	h.notifier.OrderStatusChanged(ctx, scheduled.ID(), from, scheduled.Status())
	return nil
}
