package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

func TestVerifyPaymentCommandHandler_Handle_Verify(t *testing.T) {
	ctx := t.Context()

	paid := catalogOrder(t)
	cmd, err := commands.NewVerifyPaymentCommand(paid.ID(), order.DecisionVerify, adminActor(t), 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	mirrorRepo := new(MockMirrorRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MirrorRepository").Return(mirrorRepo).Once()
	orderRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()
	orderRepo.On("Update", ctx, paid).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("OrderStatusChanged", ctx, paid.ID(), order.AwaitingPayment, order.Confirmed).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyPaymentCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Confirmed, paid.Status())
	require.Equal(t, order.PaymentVerified, paid.PaymentStatus())
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestVerifyPaymentCommandHandler_Handle_RetryIsAbsorbed(t *testing.T) {
	ctx := t.Context()

	paid := confirmedOrder(t)
	cmd, err := commands.NewVerifyPaymentCommand(paid.ID(), order.DecisionVerify, adminActor(t), 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyPaymentCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "OrderStatusChanged", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPaymentCommandHandler_Handle_StaleVersion(t *testing.T) {
	ctx := t.Context()

	paid := catalogOrder(t)
	cmd, err := commands.NewVerifyPaymentCommand(paid.ID(), order.DecisionVerify, adminActor(t), 5)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyPaymentCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	require.Equal(t, order.AwaitingPayment, paid.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestVerifyPaymentCommandHandler_Handle_CustomerIsRejected(t *testing.T) {
	ctx := t.Context()

	paid := catalogOrder(t)
	customer := customerActor(t, paid.CustomerID())
	cmd, err := commands.NewVerifyPaymentCommand(paid.ID(), order.DecisionVerify, customer, 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, paid.ID()).Return(paid, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyPaymentCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
