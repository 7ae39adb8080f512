package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// pendingCancellation parks the order in cancel-requested and returns the
// matching pending request.
func pendingCancellation(t *testing.T, o *order.Order) *cancellation.Request {
	t.Helper()
	customer := customerActor(t, o.CustomerID())
	prior, err := o.BeginCancellation(customer)
	require.NoError(t, err)
	req, err := cancellation.NewRequest(kernel.NewUUID(), o.ID(), "changed my mind", prior)
	require.NoError(t, err)
	return req
}

func TestResolveCancellationCommandHandler_Handle_ApproveReleasesInventory(t *testing.T) {
	ctx := t.Context()

	cancelled := catalogOrder(t)
	request := pendingCancellation(t, cancelled)
	cmd, err := commands.NewResolveCancellationCommand(request.ID(), true, "stock released", adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	requestRepo := new(MockCancellationRepository)
	mirrorRepo := new(MockMirrorRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CancellationRepository").Return(requestRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MirrorRepository").Return(mirrorRepo).Once()
	requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once()
	orderRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once()
	requestRepo.On("Update", ctx, request).Return(nil).Once()
	orderRepo.On("Update", ctx, cancelled).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("OrderStatusChanged", ctx, cancelled.ID(), order.CancelRequested, order.Cancelled).Once()
	notifier.On("InventoryReleaseRequested", ctx, cancelled.ID()).Once()

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveCancellationCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Cancelled, cancelled.Status())
	require.Equal(t, cancellation.Approved, request.Status())
	notifier.AssertExpectations(t)
}

func TestResolveCancellationCommandHandler_Handle_DenyRestoresPriorStatus(t *testing.T) {
	ctx := t.Context()

	cancelled := confirmedOrder(t)
	request := pendingCancellation(t, cancelled)
	cmd, err := commands.NewResolveCancellationCommand(request.ID(), false, "already in production", adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	requestRepo := new(MockCancellationRepository)
	mirrorRepo := new(MockMirrorRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CancellationRepository").Return(requestRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MirrorRepository").Return(mirrorRepo).Once()
	requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once()
	orderRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once()
	requestRepo.On("Update", ctx, request).Return(nil).Once()
	orderRepo.On("Update", ctx, cancelled).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("OrderStatusChanged", ctx, cancelled.ID(), order.CancelRequested, order.Confirmed).Once()

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveCancellationCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Confirmed, cancelled.Status())
	require.Equal(t, cancellation.Denied, request.Status())
	notifier.AssertNotCalled(t, "InventoryReleaseRequested", mock.Anything, mock.Anything)
}

func TestResolveCancellationCommandHandler_Handle_RetryIsAbsorbed(t *testing.T) {
	ctx := t.Context()

	cancelled := catalogOrder(t)
	request := pendingCancellation(t, cancelled)
	_, err := request.Resolve(true, kernel.NewUUID(), "")
	require.NoError(t, err)

	cmd, err := commands.NewResolveCancellationCommand(request.ID(), true, "retry", adminActor(t))
	require.NoError(t, err)

	requestRepo := new(MockCancellationRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CancellationRepository").Return(requestRepo).Once()
	requestRepo.On("Get", ctx, request.ID()).Return(request, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCancellationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveCancellationCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "OrderRepository")
}
