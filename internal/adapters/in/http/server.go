// Package http exposes the fulfillment API over echo. Handlers translate
// requests into commands and queries, map the error taxonomy onto status
// codes and wrap every response in the uniform envelope.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler          commands.CreateOrderCommandHandler
	reviewDesignHandler         commands.ReviewDesignCommandHandler
	verifyPaymentHandler        commands.VerifyPaymentCommandHandler
	resubmitPaymentHandler      commands.ResubmitPaymentCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	requestCancellationHandler  commands.RequestCancellationCommandHandler
	resolveCancellationHandler  commands.ResolveCancellationCommandHandler
	requestRefundHandler        commands.RequestRefundCommandHandler
	resolveRefundHandler        commands.ResolveRefundCommandHandler
	scheduleDeliveryHandler     commands.ScheduleDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	reassignCourierHandler      commands.ReassignCourierCommandHandler

	getOrderHandler          queries.GetOrderQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	getOrderAuditHandler     queries.GetOrderAuditQueryHandler
	listCancellationsHandler queries.ListCancellationRequestsQueryHandler
	listFlagsHandler         queries.ListReconciliationFlagsQueryHandler
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	ReviewDesign         commands.ReviewDesignCommandHandler
	VerifyPayment        commands.VerifyPaymentCommandHandler
	ResubmitPayment      commands.ResubmitPaymentCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	RequestCancellation  commands.RequestCancellationCommandHandler
	ResolveCancellation  commands.ResolveCancellationCommandHandler
	RequestRefund        commands.RequestRefundCommandHandler
	ResolveRefund        commands.ResolveRefundCommandHandler
	ScheduleDelivery     commands.ScheduleDeliveryCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler
	ReassignCourier      commands.ReassignCourierCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	GetOrderAudit     queries.GetOrderAuditQueryHandler
	ListCancellations queries.ListCancellationRequestsQueryHandler
	ListFlags         queries.ListReconciliationFlagsQueryHandler
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:          h.CreateOrder,
		reviewDesignHandler:         h.ReviewDesign,
		verifyPaymentHandler:        h.VerifyPayment,
		resubmitPaymentHandler:      h.ResubmitPayment,
		updateOrderStatusHandler:    h.UpdateOrderStatus,
		requestCancellationHandler:  h.RequestCancellation,
		resolveCancellationHandler:  h.ResolveCancellation,
		requestRefundHandler:        h.RequestRefund,
		resolveRefundHandler:        h.ResolveRefund,
		scheduleDeliveryHandler:     h.ScheduleDelivery,
		updateDeliveryStatusHandler: h.UpdateDeliveryStatus,
		reassignCourierHandler:      h.ReassignCourier,
		getOrderHandler:             h.GetOrder,
		listOrdersHandler:           h.ListOrders,
		getOrderAuditHandler:        h.GetOrderAudit,
		listCancellationsHandler:    h.ListCancellations,
		listFlagsHandler:            h.ListFlags,
	}
}

// RegisterRoutes mounts the API under /api/v1 along with the health probe.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.GET("/orders/:id/audit", s.GetOrderAudit)
	v1.POST("/orders/:id/status", s.UpdateOrderStatus)

	v1.POST("/orders/:id/design/review", s.ReviewDesign)
	v1.POST("/orders/:id/payment/verify", s.VerifyPayment)
	v1.POST("/orders/:id/payment/resubmit", s.ResubmitPayment)

	v1.POST("/orders/:id/cancellation", s.RequestCancellation)
	v1.GET("/orders/:id/cancellations", s.ListCancellations)
	v1.POST("/cancellations/:id/resolve", s.ResolveCancellation)

	v1.POST("/orders/:id/refund", s.RequestRefund)
	v1.POST("/refunds/:id/resolve", s.ResolveRefund)

	v1.POST("/orders/:id/delivery/schedule", s.ScheduleDelivery)
	v1.POST("/orders/:id/delivery/status", s.UpdateDeliveryStatus)
	v1.POST("/orders/:id/delivery/courier", s.ReassignCourier)

	v1.GET("/reconciliation/flags", s.ListReconciliationFlags)
}
