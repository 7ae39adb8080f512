package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// RequestCancellationCommandHandler opens a cancellation request. The order
// and the request are written in one transaction: either the order is
// parked in cancel-requested with a pending request on file, or nothing
// happened.
type RequestCancellationCommandHandler struct {
	uowFactory CancellationUoWFactory
	notifier   ports.Notifier
}

// NewRequestCancellationCommandHandler creates a handler for cancellation
// request operations.
func NewRequestCancellationCommandHandler(
	uowFactory CancellationUoWFactory,
	notifier ports.Notifier,
) RequestCancellationCommandHandler {
	return RequestCancellationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation request command.
func (h *RequestCancellationCommandHandler) Handle(ctx context.Context, cmd RequestCancellationCommand) error {
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
	cancelled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	prior, err := cancelled.BeginCancellation(cmd.Actor())
	if err != nil {
		return err
	}

	request, err := cancellation.NewRequest(cmd.RequestID(), cancelled.ID(), cmd.Reason(), prior)
	if err != nil {
		return err
	}

	if err = uow.CancellationRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelled); err != nil {
		return err
	}

	if err = syncMirror(ctx, uow.MirrorRepository(), cancelled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(cancelled.Status().String()).Inc()
	h.notifier.OrderStatusChanged(ctx, cancelled.ID(), prior, cancelled.Status())
	return nil
}
