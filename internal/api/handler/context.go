package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/api/middleware"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both user id and role
// must be present, their presence proves the middleware ran.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Identity{UserID: userID, Role: role}, nil
}
