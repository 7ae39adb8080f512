package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

func TestRequestCancellationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cancelled := catalogOrder(t)
	customer := customerActor(t, cancelled.CustomerID())
	cmd, err := commands.NewRequestCancellationCommand(kernel.NewUUID(), cancelled.ID(), "ordered twice", customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	requestRepo := new(MockCancellationRepository)
	mirrorRepo := new(MockMirrorRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CancellationRepository").Return(requestRepo).Once()
	uow.On("MirrorRepository").Return(mirrorRepo).Once()
	orderRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once()
	requestRepo.On("Add", ctx, mock.AnythingOfType("*cancellation.Request")).Return(nil).Once()
	orderRepo.On("Update", ctx, cancelled).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("OrderStatusChanged", ctx, cancelled.ID(), order.AwaitingPayment, order.CancelRequested).Once()

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestCancellationCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.CancelRequested, cancelled.Status())
	requestRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRequestCancellationCommandHandler_Handle_RecordsPriorStatus(t *testing.T) {
	ctx := t.Context()

	cancelled := confirmedOrder(t)
	customer := customerActor(t, cancelled.CustomerID())
	cmd, err := commands.NewRequestCancellationCommand(kernel.NewUUID(), cancelled.ID(), "too slow", customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	requestRepo := new(MockCancellationRepository)
	mirrorRepo := new(MockMirrorRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CancellationRepository").Return(requestRepo).Once()
	uow.On("MirrorRepository").Return(mirrorRepo).Once()
	orderRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once()
	requestRepo.On("Add", ctx, mock.MatchedBy(func(r *cancellation.Request) bool {
		return r.PriorStatus() == order.Confirmed
	})).Return(nil).Once()
	orderRepo.On("Update", ctx, cancelled).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("OrderStatusChanged", ctx, cancelled.ID(), order.Confirmed, order.CancelRequested).Once()

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestCancellationCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	requestRepo.AssertExpectations(t)
}

func TestRequestCancellationCommandHandler_Handle_DeliveredIsNotCancellable(t *testing.T) {
	ctx := t.Context()

	done := deliveredOrder(t)
	customer := customerActor(t, done.CustomerID())
	cmd, err := commands.NewRequestCancellationCommand(kernel.NewUUID(), done.ID(), "no longer needed", customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, done.ID()).Return(done, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestCancellationCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotCancellable)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRequestCancellationCommandHandler_Handle_SecondRequestIsRejected(t *testing.T) {
	ctx := t.Context()

	cancelled := catalogOrder(t)
	customer := customerActor(t, cancelled.CustomerID())
	_, err := cancelled.BeginCancellation(customer)
	require.NoError(t, err)

	cmd, err := commands.NewRequestCancellationCommand(kernel.NewUUID(), cancelled.ID(), "still waiting", customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestCancellationCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyPending)
}
