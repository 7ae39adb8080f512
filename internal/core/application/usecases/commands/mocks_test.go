package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cancellation"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/mirror"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/refund"
	"fulfillment/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllCustom(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAuditTrail(ctx context.Context, orderID kernel.UUID) ([]order.AuditEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.AuditEntry), args.Error(1)
}

type MockCancellationRepository struct{ mock.Mock }

func (m *MockCancellationRepository) Add(ctx context.Context, r *cancellation.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCancellationRepository) Update(ctx context.Context, r *cancellation.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCancellationRepository) Get(ctx context.Context, id kernel.UUID) (*cancellation.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cancellation.Request), args.Error(1)
}

func (m *MockCancellationRepository) GetPendingByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*cancellation.Request, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cancellation.Request), args.Error(1)
}

func (m *MockCancellationRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*cancellation.Request, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cancellation.Request), args.Error(1)
}

type MockRefundRepository struct{ mock.Mock }

func (m *MockRefundRepository) Add(ctx context.Context, r *refund.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRefundRepository) Update(ctx context.Context, r *refund.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRefundRepository) Get(ctx context.Context, id kernel.UUID) (*refund.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refund.Request), args.Error(1)
}

func (m *MockRefundRepository) GetPendingByOrder(ctx context.Context, orderID kernel.UUID) (*refund.Request, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refund.Request), args.Error(1)
}

type MockScheduleRepository struct{ mock.Mock }

func (m *MockScheduleRepository) Add(ctx context.Context, s *delivery.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, s *delivery.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Schedule, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Schedule), args.Error(1)
}

type MockMirrorRepository struct{ mock.Mock }

func (m *MockMirrorRepository) Add(ctx context.Context, r *mirror.FulfillmentRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockMirrorRepository) Update(ctx context.Context, r *mirror.FulfillmentRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockMirrorRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*mirror.FulfillmentRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mirror.FulfillmentRecord), args.Error(1)
}

type MockReconciliationRepository struct{ mock.Mock }

func (m *MockReconciliationRepository) Add(ctx context.Context, f *mirror.ReconciliationFlag) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockReconciliationRepository) GetAll(ctx context.Context, limit int) ([]*mirror.ReconciliationFlag, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mirror.ReconciliationFlag), args.Error(1)
}

// MockUoW satisfies every command unit of work interface so a single mock
// serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CancellationRepository() ports.CancellationRepository {
	args := m.Called()
	return args.Get(0).(ports.CancellationRepository)
}

func (m *MockUoW) RefundRepository() ports.RefundRepository {
	args := m.Called()
	return args.Get(0).(ports.RefundRepository)
}

func (m *MockUoW) ScheduleRepository() ports.ScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleRepository)
}

func (m *MockUoW) MirrorRepository() ports.MirrorRepository {
	args := m.Called()
	return args.Get(0).(ports.MirrorRepository)
}

func (m *MockUoW) ReconciliationRepository() ports.ReconciliationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReconciliationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCancellationUoWFactory struct{ mock.Mock }

func (m *MockCancellationUoWFactory) Create() commands.CancellationUoW {
	args := m.Called()
	return args.Get(0).(commands.CancellationUoW)
}

type MockRefundUoWFactory struct{ mock.Mock }

func (m *MockRefundUoWFactory) Create() commands.RefundUoW {
	args := m.Called()
	return args.Get(0).(commands.RefundUoW)
}

type MockScheduleUoWFactory struct{ mock.Mock }

func (m *MockScheduleUoWFactory) Create() commands.ScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduleUoW)
}

type MockSweepUoWFactory struct{ mock.Mock }

func (m *MockSweepUoWFactory) Create() commands.SweepUoW {
	args := m.Called()
	return args.Get(0).(commands.SweepUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderStatusChanged(ctx context.Context, orderID kernel.UUID, from, to order.Status) {
	m.Called(ctx, orderID, from, to)
}

func (m *MockNotifier) InventoryReleaseRequested(ctx context.Context, orderID kernel.UUID) {
	m.Called(ctx, orderID)
}
