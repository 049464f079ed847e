package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

const (
	userKey  = "user"
	tokenKey = "token"
)

// Authenticate reads the access token from the named cookie, resolves it
// through the auth service and injects the user and raw token into the
// context. Errors are returned for the central error handler to render.
func Authenticate(auth ports.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrNotLoggedIn
			}

			user, err := auth.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}

			c.Set(userKey, user)
			c.Set(tokenKey, cookie.Value)
			return next(c)
		}
	}
}

// CurrentUser returns the user injected by Authenticate, or nil.
func CurrentUser(c echo.Context) *domain.User {
	u, _ := c.Get(userKey).(*domain.User)
	return u
}

// CurrentToken returns the raw access token injected by Authenticate.
func CurrentToken(c echo.Context) string {
	t, _ := c.Get(tokenKey).(string)
	return t
}
