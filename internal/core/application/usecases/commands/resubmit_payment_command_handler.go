package commands

import (
	"context"
)

// ResubmitPaymentCommandHandler returns a rejected payment to the pending
// state so an admin can review it again.
type ResubmitPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResubmitPaymentCommandHandler creates a handler for payment
// resubmission operations.
func NewResubmitPaymentCommandHandler(uowFactory OrderUoWFactory) ResubmitPaymentCommandHandler {
	return ResubmitPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment resubmission command.
func (h *ResubmitPaymentCommandHandler) Handle(ctx context.Context, cmd ResubmitPaymentCommand) error {
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
	paid, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = paid.ResubmitPayment(cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, paid); err != nil {
		return err
	}

	if err = syncMirror(ctx, uow.MirrorRepository(), paid); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
