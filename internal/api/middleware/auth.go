package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextUserID = "user_id"
)

// Authenticate is the authorization gate, applied to every route before any
// handler runs.
//
// Three outcomes:
//   - no Authorization header: the request proceeds unauthenticated; routes
//     that need a subject reject it later via RequireAuth.
//   - header present but the token fails validation: 401, even on public
//     routes. A bad credential is never silently downgraded to "anonymous".
//   - valid token: the subject id is stored on the request context.
func Authenticate(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, ok := tokens.Subject(parts[1])
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUserID, subject)
			return next(c)
		}
	}
}

// RequireAuth rejects requests that reached a protected route without an
// authenticated subject. Ownership checks beyond "is logged in" are the
// responsibility of each write operation, not of this middleware.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(ContextUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
