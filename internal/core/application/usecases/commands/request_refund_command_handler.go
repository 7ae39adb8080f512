package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"
)

// RequestRefundCommandHandler opens a refund request against a delivered
// order. The order and the request commit together.
type RequestRefundCommandHandler struct {
	uowFactory RefundUoWFactory
	notifier   ports.Notifier
}

// NewRequestRefundCommandHandler creates a handler for refund request
// operations.
func NewRequestRefundCommandHandler(uowFactory RefundUoWFactory, notifier ports.Notifier) RequestRefundCommandHandler {
	return RequestRefundCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the refund request command.
func (h *RequestRefundCommandHandler) Handle(ctx context.Context, cmd RequestRefundCommand) error {
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
	refunded, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	refundRepo := uow.RefundRepository()
	if _, err = refundRepo.GetPendingByOrder(ctx, refunded.ID()); err == nil {
		return errs.NewAlreadyPendingError(refunded.ID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	from := refunded.Status()
	if err = refunded.BeginRefund(cmd.Amount(), cmd.Actor()); err != nil {
		return err
	}

	request, err := refund.NewRequest(cmd.RequestID(), refunded.ID(), cmd.Amount(), cmd.Reason())
	if err != nil {
		return err
	}

	if err = refundRepo.Add(ctx, request); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, refunded); err != nil {
		return err
	}

	if err = syncMirror(ctx, uow.MirrorRepository(), refunded); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrderTransitionsTotal.WithLabelValues(refunded.Status().String()).Inc()
	h.notifier.OrderStatusChanged(ctx, refunded.ID(), from, refunded.Status())
	return nil
}
