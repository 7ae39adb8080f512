package commands

import (
	"context"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"
)

// ReviewDesignCommandHandler records an admin design decision on a custom
// order and keeps the fulfillment mirror in step.
type ReviewDesignCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewReviewDesignCommandHandler creates a handler for design review
// operations.
func NewReviewDesignCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ReviewDesignCommandHandler {
	return ReviewDesignCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the design review command.
func (h *ReviewDesignCommandHandler) Handle(ctx context.Context, cmd ReviewDesignCommand) error {
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
	if err = reviewed.ReviewDesign(cmd.Approve(), cmd.Actor()); err != nil {
		return err
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

	metrics.OrderTransitionsTotal.WithLabelValues(reviewed.Status().String()).Inc()
	h.notifier.OrderStatusChanged(ctx, reviewed.ID(), from, reviewed.Status())
	return nil
}
