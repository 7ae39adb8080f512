package commands

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// UpdateOrderStatusCommandHandler applies a direct status transition. Used
// for the operational moves that carry no extra payload, such as Confirmed
// to Processing.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for direct status
// transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status transition command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	updated, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Version() > 0 {
		if err = updated.CheckVersion(cmd.Version()); err != nil {
			return err
		}
	}

	from := updated.Status()
	if err = updated.TransitionTo(cmd.Target(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return err
	}

	if err = syncMirror(ctx, uow.MirrorRepository(), updated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(updated.Status().String()).Inc()
	h.notifier.OrderStatusChanged(ctx, updated.ID(), from, updated.Status())
	return nil
}
