package commands

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// UpdateDeliveryStatusCommandHandler advances an order's delivery state and
// syncs the canonical status where the delivery move implies one.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// progress operations.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery progress command.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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
	advanced, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Version() > 0 {
		if err = advanced.CheckVersion(cmd.Version()); err != nil {
			return err
		}
	}

	from := advanced.Status()
	if err = advanced.AdvanceDelivery(cmd.Target(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, advanced); err != nil {
		return err
	}

	if err = syncMirror(ctx, uow.MirrorRepository(), advanced); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if advanced.Status() != from {
		metrics.OrderTransitionsTotal.WithLabelValues(advanced.Status().String()).Inc()
		h.notifier.OrderStatusChanged(ctx, advanced.ID(), from, advanced.Status())
	}
	return nil
}
