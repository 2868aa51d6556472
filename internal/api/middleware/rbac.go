package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// RBAC admits only the listed roles, using the role injected by Auth.
// Other roles get domain.ErrForbidden for the error handler to render.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return fmt.Errorf("role %q on %s: %w", role, c.Path(), domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
