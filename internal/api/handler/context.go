package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/api/middleware"
	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

// actor returns the authenticated user or fails fast when the Authenticate
// middleware did not run for this route.
func actor(c echo.Context) (*domain.User, error) {
	u := middleware.CurrentUser(c)
	if u == nil {
		return nil, domain.ErrNotLoggedIn
	}
	return u, nil
}

// pageRequest reads ?cursor= and ?limit= from the query string.
func pageRequest(c echo.Context) (ports.PageRequest, error) {
	page := ports.PageRequest{Cursor: c.QueryParam("cursor")}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return ports.PageRequest{}, domainValidation("limit must be a positive integer")
		}
		page.Limit = n
	}
	return page.Normalized(), nil
}
