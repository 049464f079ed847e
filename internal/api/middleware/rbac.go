package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/service"
)

// RequireRoles lets the request through when the authenticated user holds
// at least one of the allowed roles. It must run after Authenticate.
func RequireRoles(allowed domain.RoleSet) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := service.Require(CurrentUser(c), allowed); err != nil {
				return err
			}
			return next(c)
		}
	}
}
