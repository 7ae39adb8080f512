package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mirror"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"
)

// ReconcileOrdersCommandHandler sweeps every custom order, compares it with
// its fulfillment mirror and records a flag per divergence. The sweep never
// writes to orders or mirrors; flags are its only output.
type ReconcileOrdersCommandHandler struct {
	uowFactory SweepUoWFactory
	reconciler services.Reconciler
}

// NewReconcileOrdersCommandHandler creates a handler for reconciliation
// sweeps.
func NewReconcileOrdersCommandHandler(uowFactory SweepUoWFactory) ReconcileOrdersCommandHandler {
	return ReconcileOrdersCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReconciler(),
	}
}

// Handle processes the reconciliation sweep command.
func (h *ReconcileOrdersCommandHandler) Handle(ctx context.Context, cmd ReconcileOrdersCommand) error {
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

	orders, err := uow.OrderRepository().GetAllCustom(ctx)
	if err != nil {
		return err
	}

	mirrorRepo := uow.MirrorRepository()
	flagRepo := uow.ReconciliationRepository()

	for _, o := range orders {
		record, err := mirrorRepo.GetByOrder(ctx, o.ID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		divergences, err := h.reconciler.Check(o, record)
		if err != nil {
			return err
		}

		for _, d := range divergences {
			flag, err := mirror.NewReconciliationFlag(kernel.NewUUID(), d)
			if err != nil {
				return err
			}
			if err = flagRepo.Add(ctx, flag); err != nil {
				return err
			}
			metrics.ReconciliationMismatchesTotal.Inc()
		}
	}

	return uow.Commit(ctx)
}
