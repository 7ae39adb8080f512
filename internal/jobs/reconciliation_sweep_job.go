package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/metrics"
)

// ReconciliationSweepJob periodically walks every custom order, compares the
// canonical record with its fulfillment mirror and records a flag per
// divergence. Order state is never modified by the sweep.
type ReconciliationSweepJob struct {
	handler  commands.ReconcileOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewReconciliationSweepJob creates the sweep job. The schedule is a
// standard five-field cron expression.
func NewReconciliationSweepJob(
	handler commands.ReconcileOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ReconciliationSweepJob {
	return &ReconciliationSweepJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "reconciliation_sweep_job"),
	}
}

// Start begins the reconciliation sweep on its schedule.
func (j *ReconciliationSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewReconcileOrdersCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation sweep command construction failed", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("reconciliation_sweep").Inc()
			j.logger.ErrorContext(ctx, "Reconciliation sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation sweep job.
func (j *ReconciliationSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation sweep job stopped")
}
