package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

func mustSlot(t *testing.T) delivery.TimeSlot {
	t.Helper()
	start := time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC)
	slot, err := delivery.NewTimeSlot(start, start.Add(3*time.Hour))
	require.NoError(t, err)
	return slot
}

func TestScheduleDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	scheduled := confirmedOrder(t)
	cmd, err := commands.NewScheduleDeliveryCommand(
		kernel.NewUUID(), scheduled.ID(), mustSlot(t), kernel.NewUUID(), adminActor(t), 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	scheduleRepo := new(MockScheduleRepository)
	mirrorRepo := new(MockMirrorRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ScheduleRepository").Return(scheduleRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MirrorRepository").Return(mirrorRepo).Once()
	scheduleRepo.On("GetByOrder", ctx, scheduled.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", scheduled.ID())).Once()
	orderRepo.On("Get", ctx, scheduled.ID()).Return(scheduled, nil).Once()
	scheduleRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Schedule")).Return(nil).Once()
	orderRepo.On("Update", ctx, scheduled).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("OrderStatusChanged", ctx, scheduled.ID(), order.Confirmed, order.Scheduled).Once()

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScheduleDeliveryCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Scheduled, scheduled.Status())
	require.Equal(t, order.DeliveryScheduled, scheduled.DeliveryStatus())
	scheduleRepo.AssertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_SecondScheduleIsRejected(t *testing.T) {
	ctx := t.Context()

	scheduled := confirmedOrder(t)
	existing, err := delivery.NewSchedule(kernel.NewUUID(), scheduled.ID(), mustSlot(t), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewScheduleDeliveryCommand(
		kernel.NewUUID(), scheduled.ID(), mustSlot(t), kernel.NewUUID(), adminActor(t), 0)
	require.NoError(t, err)

	scheduleRepo := new(MockScheduleRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ScheduleRepository").Return(scheduleRepo).Once()
	scheduleRepo.On("GetByOrder", ctx, scheduled.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScheduleDeliveryCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyScheduled)
	scheduleRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestScheduleDeliveryCommandHandler_Handle_UnverifiedPaymentIsRejected(t *testing.T) {
	ctx := t.Context()

	unpaid := catalogOrder(t)
	cmd, err := commands.NewScheduleDeliveryCommand(
		kernel.NewUUID(), unpaid.ID(), mustSlot(t), kernel.NewUUID(), adminActor(t), 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	scheduleRepo := new(MockScheduleRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ScheduleRepository").Return(scheduleRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	scheduleRepo.On("GetByOrder", ctx, unpaid.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", unpaid.ID())).Once()
	orderRepo.On("Get", ctx, unpaid.ID()).Return(unpaid, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockScheduleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScheduleDeliveryCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	require.Equal(t, order.DeliveryPending, unpaid.DeliveryStatus())
}
