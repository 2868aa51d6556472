package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// SessionSource reports the user holding the active session.
type SessionSource interface {
	CurrentUser(ctx context.Context) (*domain.User, bool)
}

// Session rejects requests whose token does not belong to the active session
// user. A valid token stops working once its user logs out or another login
// replaces the session. Must run after Auth.
func Session(src SessionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, _ := c.Get("username").(string)
			role, _ := c.Get("role").(string)

			current, ok := src.CurrentUser(c.Request().Context())
			if !ok || current.Username != username || current.Role != role {
				return echo.NewHTTPError(http.StatusUnauthorized, "session is not active")
			}
			return next(c)
		}
	}
}
