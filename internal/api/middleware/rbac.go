package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/core/domain"
)

// RBAC admits only sessions whose role is in allowedRoles. Rejections are
// returned as domain.ErrForbidden so the error handler renders the usual
// envelope and toast.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if _, ok := allowed[role]; !ok {
				return fmt.Errorf("role %q on %s: %w", role, c.Path(), domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
