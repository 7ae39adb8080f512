package commands

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// VerifyPaymentCommandHandler records an admin payment decision. Repeated
// deliveries of the same decision are absorbed without a second write.
type VerifyPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewVerifyPaymentCommandHandler creates a handler for payment verification
// operations.
func NewVerifyPaymentCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the payment verification command.
func (h *VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
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
	reviewed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Version() > 0 {
		if err = reviewed.CheckVersion(cmd.Version()); err != nil {
			return err
		}
	}

	from := reviewed.Status()
	applied, err := reviewed.VerifyPayment(cmd.Decision(), cmd.Actor())
	if err != nil {
		return err
	}
	if !applied {
		return uow.Commit(ctx)
	}

	if err = orderRepo.Update(ctx, reviewed); err != nil {
		return err
	}

	if err = syncMirror(ctx, uow.MirrorRepository(), reviewed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.PaymentDecisionsTotal.WithLabelValues(cmd.Decision().String()).Inc()
	if reviewed.Status() != from {
		metrics.OrderTransitionsTotal.WithLabelValues(reviewed.Status().String()).Inc()
		h.notifier.OrderStatusChanged(ctx, reviewed.ID(), from, reviewed.Status())
	}
	return nil
}
