package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	var notifier ports.Notifier = kafka.NewNoopNotifier()
	if config.KafkaEnabled {
		kafkaNotifier, err := kafka.NewNotifier([]string{config.KafkaHost}, config.KafkaEventsTopic, logger)
		if err != nil {
			return CompositionRoot{}, err
		}
		notifier = kafkaNotifier
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
		config:     config,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewDesignCommandHandler() commands.ReviewDesignCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewDesignCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyPaymentCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateResubmitPaymentCommandHandler() commands.ResubmitPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResubmitPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRequestCancellationCommandHandler() commands.RequestCancellationCommandHandler {
	var f commands.CancellationUoWFactory = FuncCancellationUoWFactory(func() commands.CancellationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestCancellationCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateResolveCancellationCommandHandler() commands.ResolveCancellationCommandHandler {
	var f commands.CancellationUoWFactory = FuncCancellationUoWFactory(func() commands.CancellationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveCancellationCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRequestRefundCommandHandler() commands.RequestRefundCommandHandler {
	var f commands.RefundUoWFactory = FuncRefundUoWFactory(func() commands.RefundUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestRefundCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateResolveRefundCommandHandler() commands.ResolveRefundCommandHandler {
	var f commands.RefundUoWFactory = FuncRefundUoWFactory(func() commands.RefundUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveRefundCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateReassignCourierCommandHandler() commands.ReassignCourierCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileOrdersCommandHandler() commands.ReconcileOrdersCommandHandler {
	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderAuditQueryHandler() queries.GetOrderAuditQueryHandler {
	return queries.NewGetOrderAuditQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCancellationRequestsQueryHandler() queries.ListCancellationRequestsQueryHandler {
	return queries.NewListCancellationRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReconciliationFlagsQueryHandler() queries.ListReconciliationFlagsQueryHandler {
	return queries.NewListReconciliationFlagsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case handler into the echo server.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		ReviewDesign:         c.CreateReviewDesignCommandHandler(),
		VerifyPayment:        c.CreateVerifyPaymentCommandHandler(),
		ResubmitPayment:      c.CreateResubmitPaymentCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		RequestCancellation:  c.CreateRequestCancellationCommandHandler(),
		ResolveCancellation:  c.CreateResolveCancellationCommandHandler(),
		RequestRefund:        c.CreateRequestRefundCommandHandler(),
		ResolveRefund:        c.CreateResolveRefundCommandHandler(),
		ScheduleDelivery:     c.CreateScheduleDeliveryCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),
		ReassignCourier:      c.CreateReassignCourierCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListOrders:           c.CreateListOrdersQueryHandler(),
		GetOrderAudit:        c.CreateGetOrderAuditQueryHandler(),
		ListCancellations:    c.CreateListCancellationRequestsQueryHandler(),
		ListFlags:            c.CreateListReconciliationFlagsQueryHandler(),
	})
}

// CreateJobManager wires the reconciliation sweep into the cron scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileOrdersCommandHandler(), c.config.ReconciliationCron, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCancellationUoWFactory func() commands.CancellationUoW

func (f FuncCancellationUoWFactory) Create() commands.CancellationUoW {
	return f()
}

type FuncRefundUoWFactory func() commands.RefundUoW

func (f FuncRefundUoWFactory) Create() commands.RefundUoW {
	return f()
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}
