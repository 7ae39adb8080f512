package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"
)

type reconciliationFlagResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Field      string    `json:"field"`
	Canonical  string    `json:"canonical"`
	Mirror     string    `json:"mirror"`
	DetectedAt time.Time `json:"detected_at"`
}

// ListReconciliationFlags handles GET /api/v1/reconciliation/flags.
func (s *Server) ListReconciliationFlags(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("limit"))
		}
		limit = parsed
	}

	query, err := queries.NewListReconciliationFlagsQuery(limit)
	if err != nil {
		return respondError(ctx, err)
	}

	results, err := s.listFlagsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]reconciliationFlagResponse, len(results))
	for i, r := range results {
		response[i] = reconciliationFlagResponse{
			ID:         r.ID.String(),
			OrderID:    r.OrderID.String(),
			Field:      r.Field,
			Canonical:  r.Canonical,
			Mirror:     r.Mirror,
			DetectedAt: r.DetectedAt,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}
