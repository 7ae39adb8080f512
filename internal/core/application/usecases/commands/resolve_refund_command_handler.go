package commands

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// ResolveRefundCommandHandler applies an admin decision to a pending refund
// request, with the same retry-absorbing behavior as cancellation
// resolution.
type ResolveRefundCommandHandler struct {
	uowFactory RefundUoWFactory
	notifier   ports.Notifier
}

// NewResolveRefundCommandHandler creates a handler for refund resolution
// operations.
func NewResolveRefundCommandHandler(uowFactory RefundUoWFactory, notifier ports.Notifier) ResolveRefundCommandHandler {
	return ResolveRefundCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the refund resolution command.
func (h *ResolveRefundCommandHandler) Handle(ctx context.Context, cmd ResolveRefundCommand) error {
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

	requestRepo := uow.RefundRepository()
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
		err = resolved.ApproveRefund(cmd.Actor())
	} else {
		err = resolved.DeclineRefund(cmd.Actor())
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
	return nil
}
