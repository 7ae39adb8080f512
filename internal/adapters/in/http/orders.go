package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

type createOrderRequest struct {
	Kind        string `json:"kind"`
	CustomerID  string `json:"customer_id"`
	TotalAmount int64  `json:"total_amount"`
	DesignBrief string `json:"design_brief"`
}

type orderResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	CustomerID     string    `json:"customer_id"`
	TotalAmount    int64     `json:"total_amount"`
	DesignBrief    string    `json:"design_brief,omitempty"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	DeliveryStatus string    `json:"delivery_status"`
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toOrderResponse(r queries.GetOrderQueryResponse) orderResponse {
	return orderResponse{
		ID:             r.ID.String(),
		Kind:           r.Kind,
		CustomerID:     r.CustomerID.String(),
		TotalAmount:    r.TotalAmount,
		DesignBrief:    r.DesignBrief,
		Status:         r.Status,
		PaymentStatus:  r.PaymentStatus,
		DeliveryStatus: r.DeliveryStatus,
		Version:        r.Version,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body createOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	kind, err := order.KindFromString(body.Kind)
	if err != nil {
		return respondError(ctx, err)
	}

	// Customers order for themselves; staff may order on a customer's behalf.
	customerID := actor.ID()
	if body.CustomerID != "" {
		customerID, err = kernel.UUIDFromString(body.CustomerID)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("customer_id"))
		}
	}

	total, err := kernel.NewMoney(body.TotalAmount)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, kind, customerID, total, body.DesignBrief)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, map[string]string{"order_id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toOrderResponse(result))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	filter := queries.ListOrdersFilter{
		Status: ctx.QueryParam("status"),
		Kind:   ctx.QueryParam("kind"),
	}

	if raw := ctx.QueryParam("customer_id"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("customer_id"))
		}
		filter.CustomerID = customerID
	}

	if raw := ctx.QueryParam("created_after"); raw != "" {
		after, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("created_after"))
		}
		filter.CreatedAfter = after
	}

	if raw := ctx.QueryParam("created_before"); raw != "" {
		before, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("created_before"))
		}
		filter.CreatedBefore = before
	}

	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("limit"))
		}
		filter.Limit = limit
	}

	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("offset"))
		}
		filter.Offset = offset
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return respondError(ctx, err)
	}

	results, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, len(results))
	for i, r := range results {
		response[i] = toOrderResponse(r)
	}

	return respondData(ctx, http.StatusOK, response)
}

type auditEntryResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	ActorID         string    `json:"actor_id"`
	ActorRole       string    `json:"actor_role"`
	FromStatus      string    `json:"from_status"`
	ToStatus        string    `json:"to_status"`
	Decision        string    `json:"decision,omitempty"`
	PreviousPayment string    `json:"previous_payment"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// GetOrderAudit handles GET /api/v1/orders/:id/audit.
func (s *Server) GetOrderAudit(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	query, err := queries.NewGetOrderAuditQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	results, err := s.getOrderAuditHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]auditEntryResponse, len(results))
	for i, r := range results {
		response[i] = auditEntryResponse{
			ID:              r.ID.String(),
			OrderID:         r.OrderID.String(),
			ActorID:         r.ActorID.String(),
			ActorRole:       r.ActorRole,
			FromStatus:      r.FromStatus,
			ToStatus:        r.ToStatus,
			Decision:        r.Decision,
			PreviousPayment: r.PreviousPayment,
			RecordedAt:      r.RecordedAt,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

type updateOrderStatusRequest struct {
	Target  string `json:"target"`
	Version int    `json:"version"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("id"))
	}

	var body updateOrderStatusRequest
	if err := ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	target, err := order.StatusFromString(body.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, actor, body.Version)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx)
}
