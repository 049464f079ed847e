package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/core/domain"
)

// response is the success envelope shared by every endpoint.
type response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// pageResponse is the data payload of list endpoints.
type pageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func newPage[T any](items []T, next string) pageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return pageResponse[T]{Items: items, NextCursor: next}
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, response{Message: message, Data: data})
}

// bind decodes the request body and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

func domainValidation(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
}

// dateTime accepts RFC 3339 timestamps as well as bare YYYY-MM-DD dates.
type dateTime struct {
	time.Time
}

func (d *dateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

func (d *dateTime) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func fromStrings[T ~string](in []string) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}
