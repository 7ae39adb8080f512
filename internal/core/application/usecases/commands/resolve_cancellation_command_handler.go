package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// ResolveCancellationCommandHandler applies an admin decision to a pending
// cancellation request. A retried decision that is already recorded is
// absorbed without touching the order again.
type ResolveCancellationCommandHandler struct {
	uowFactory CancellationUoWFactory
	notifier   ports.Notifier
}

// NewResolveCancellationCommandHandler creates a handler for cancellation
// resolution operations.
func NewResolveCancellationCommandHandler(
	uowFactory CancellationUoWFactory,
	notifier ports.Notifier,
) ResolveCancellationCommandHandler {
	return ResolveCancellationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation resolution command.
func (h *ResolveCancellationCommandHandler) Handle(ctx context.Context, cmd ResolveCancellationCommand) error {
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

	requestRepo := uow.CancellationRepository()
	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	applied, err := request.Resolve(cmd.Approve(), cmd.Actor().ID(), cmd.Notes())
	if err != nil {
		return err
	}
	if !applied {
		return uow.Commit(ctx)
	}

	orderRepo := uow.OrderRepository()
	resolved, err := orderRepo.Get(ctx, request.OrderID())
	if err != nil {
		return err
	}

	from := resolved.Status()
	if cmd.Approve() {
		err = resolved.ApproveCancellation(cmd.Actor())
	} else {
		err = resolved.DeclineCancellation(request.PriorStatus(), cmd.Actor())
	}
	if err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, resolved); err != nil {
		return err
	}

	if err = syncMirror(ctx, uow.MirrorRepository(), resolved); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(resolved.Status().String()).Inc()
	h.notifier.OrderStatusChanged(ctx, resolved.ID(), from, resolved.Status())
	if cmd.Approve() && resolved.Kind() == order.KindCatalog {
		h.notifier.InventoryReleaseRequested(ctx, resolved.ID())
	}
	return nil
}
