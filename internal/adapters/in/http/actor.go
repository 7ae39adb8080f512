package http

import (
	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

// actorFromHeaders builds the acting identity from the headers set by the
// authentication gateway. Both headers are required on every mutating route.
func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	rawID := ctx.Request().Header.Get(headerActorID)
	if rawID == "" {
		return kernel.Actor{}, errs.NewValueIsRequiredError(headerActorID)
	}

	rawRole := ctx.Request().Header.Get(headerActorRole)
	if rawRole == "" {
		return kernel.Actor{}, errs.NewValueIsRequiredError(headerActorRole)
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidError(headerActorID)
	}

	role, err := kernel.RoleFromString(rawRole)
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidError(headerActorRole)
	}

	return kernel.NewActor(id, role)
}
