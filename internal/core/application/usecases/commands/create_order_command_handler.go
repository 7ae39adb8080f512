package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/metrics"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Catalog orders enter the flow awaiting payment; custom orders start in
// design review and get a fulfillment mirror in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Kind(), cmd.CustomerID(), cmd.Total(), cmd.DesignBrief())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = syncMirror(ctx, uow.MirrorRepository(), newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(cmd.Kind().String()).Inc()
	return nil
}
