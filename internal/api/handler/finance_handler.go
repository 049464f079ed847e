package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/core/ports"
)

type FinanceHandler struct {
	service ports.FinanceService
}

func NewFinanceHandler(service ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// Create books a daily revenue entry.
//
// @Summary      Create financial record
// @Tags         finances
// @Accept       json
// @Produce      json
// @Param        body  body      createFinanceRequest  true  "Financial record"
// @Success      201   {object}  response{data=domain.FinanceRecord}
// @Failure      403   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /api/finances [post]
func (h *FinanceHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	var req createFinanceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	f, err := h.service.Create(c.Request().Context(), user, req.toDomain())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "financial record created", f)
}

// List pages through financial records.
//
// @Summary      List financial records
// @Tags         finances
// @Produce      json
// @Param        cursor  query     string  false  "Cursor from the previous page"
// @Param        limit   query     int     false  "Page size (default 50, max 100)"
// @Success      200     {object}  response{data=pageResponse[domain.FinanceRecord]}
// @Router       /api/finances [get]
func (h *FinanceHandler) List(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}
	res, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "financial records", newPage(res.Items, res.NextCursor))
}

// Get returns one financial record.
//
// @Summary      Get financial record
// @Tags         finances
// @Produce      json
// @Param        record_id  path      string  true  "Record id"
// @Success      200        {object}  response{data=domain.FinanceRecord}
// @Failure      404        {object}  ErrorResponse
// @Router       /api/finances/{record_id} [get]
func (h *FinanceHandler) Get(c echo.Context) error {
	f, err := h.service.Get(c.Request().Context(), c.Param("record_id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "financial record", f)
}

// Update merges the supplied fields into a financial record. Only doctors
// may set reviewed_by_doctor.
//
// @Summary      Update financial record
// @Tags         finances
// @Accept       json
// @Produce      json
// @Param        record_id  path      string                true  "Record id"
// @Param        body       body      updateFinanceRequest  true  "Fields to change"
// @Success      200        {object}  response{data=domain.FinanceRecord}
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /api/finances/{record_id} [put]
func (h *FinanceHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	var req updateFinanceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	f, err := h.service.Update(c.Request().Context(), user, c.Param("record_id"), req.toDomain())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "financial record updated", f)
}

// Delete removes a financial record.
//
// @Summary      Delete financial record
// @Tags         finances
// @Produce      json
// @Param        record_id  path      string  true  "Record id"
// @Success      200        {object}  response
// @Failure      404        {object}  ErrorResponse
// @Router       /api/finances/{record_id} [delete]
func (h *FinanceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("record_id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "financial record deleted", nil)
}
