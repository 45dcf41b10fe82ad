package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated subject id injected by the
// Authenticate middleware. Handlers behind RequireAuth can rely on it being
// set; the check here is a fast-fail guard for misrouted registrations.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}
