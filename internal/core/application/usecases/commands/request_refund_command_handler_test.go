package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/pkg/errs"
)

func TestRequestRefundCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	done := deliveredOrder(t)
	customer := customerActor(t, done.CustomerID())
	cmd, err := commands.NewRequestRefundCommand(kernel.NewUUID(), done.ID(), mustMoney(t, 4200), "scratched top", customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	refundRepo := new(MockRefundRepository)
	mirrorRepo := new(MockMirrorRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("RefundRepository").Return(refundRepo).Once()
	uow.On("MirrorRepository").Return(mirrorRepo).Once()
	orderRepo.On("Get", ctx, done.ID()).Return(done, nil).Once()
	refundRepo.On("GetPendingByOrder", ctx, done.ID()).
		Return(nil, errs.NewObjectNotFoundError("pending refund request", done.ID().String())).Once()
	refundRepo.On("Add", ctx, mock.AnythingOfType("*refund.Request")).Return(nil).Once()
	orderRepo.On("Update", ctx, done).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("OrderStatusChanged", ctx, done.ID(), order.Delivered, order.RefundRequested).Once()

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestRefundCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.RefundRequested, done.Status())
	refundRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRequestRefundCommandHandler_Handle_PendingRequestIsRejected(t *testing.T) {
	ctx := t.Context()

	done := deliveredOrder(t)
	customer := customerActor(t, done.CustomerID())
	open, err := refund.NewRequest(kernel.NewUUID(), done.ID(), mustMoney(t, 1000), "first request")
	require.NoError(t, err)

	cmd, err := commands.NewRequestRefundCommand(kernel.NewUUID(), done.ID(), mustMoney(t, 2000), "second request", customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	refundRepo := new(MockRefundRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("RefundRepository").Return(refundRepo).Once()
	orderRepo.On("Get", ctx, done.ID()).Return(done, nil).Once()
	refundRepo.On("GetPendingByOrder", ctx, done.ID()).Return(open, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestRefundCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyPending)
	require.Equal(t, order.Delivered, done.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	refundRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRequestRefundCommandHandler_Handle_AmountAboveTotal(t *testing.T) {
	ctx := t.Context()

	done := deliveredOrder(t)
	customer := customerActor(t, done.CustomerID())
	cmd, err := commands.NewRequestRefundCommand(kernel.NewUUID(), done.ID(), mustMoney(t, 999_999), "overreach", customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	refundRepo := new(MockRefundRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("RefundRepository").Return(refundRepo).Once()
	orderRepo.On("Get", ctx, done.ID()).Return(done, nil).Once()
	refundRepo.On("GetPendingByOrder", ctx, done.ID()).
		Return(nil, errs.NewObjectNotFoundError("pending refund request", done.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestRefundCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidAmount)
	require.Equal(t, order.Delivered, done.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
