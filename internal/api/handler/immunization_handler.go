package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/core/ports"
)

type ImmunizationHandler struct {
	service ports.ImmunizationService
}

func NewImmunizationHandler(service ports.ImmunizationService) *ImmunizationHandler {
	return &ImmunizationHandler{service: service}
}

// Create records the vaccines given against a card.
//
// @Summary      Create immunization
// @Tags         immunizations
// @Accept       json
// @Produce      json
// @Param        body  body      createImmunizationRequest  true  "Immunization"
// @Success      201   {object}  response{data=domain.Immunization}
// @Failure      403   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /api/immunizations [post]
func (h *ImmunizationHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	var req createImmunizationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	im, err := h.service.Create(c.Request().Context(), user, req.toDomain())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "immunization created", im)
}

// List pages through immunizations.
//
// @Summary      List immunizations
// @Tags         immunizations
// @Produce      json
// @Param        cursor  query     string  false  "Cursor from the previous page"
// @Param        limit   query     int     false  "Page size (default 50, max 100)"
// @Success      200     {object}  response{data=pageResponse[domain.Immunization]}
// @Router       /api/immunizations [get]
func (h *ImmunizationHandler) List(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}
	res, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "immunizations", newPage(res.Items, res.NextCursor))
}

// Get returns one immunization card.
//
// @Summary      Get immunization
// @Tags         immunizations
// @Produce      json
// @Param        card_no  path      string  true  "Card number"
// @Success      200      {object}  response{data=domain.Immunization}
// @Failure      404      {object}  ErrorResponse
// @Router       /api/immunizations/{card_no} [get]
func (h *ImmunizationHandler) Get(c echo.Context) error {
	im, err := h.service.Get(c.Request().Context(), c.Param("card_no"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "immunization", im)
}

// Update merges the supplied fields into an immunization.
//
// @Summary      Update immunization
// @Tags         immunizations
// @Accept       json
// @Produce      json
// @Param        card_no  path      string                     true  "Card number"
// @Param        body     body      updateImmunizationRequest  true  "Fields to change"
// @Success      200      {object}  response{data=domain.Immunization}
// @Failure      404      {object}  ErrorResponse
// @Router       /api/immunizations/{card_no} [put]
func (h *ImmunizationHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	var req updateImmunizationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	im, err := h.service.Update(c.Request().Context(), user, c.Param("card_no"), req.toDomain())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "immunization updated", im)
}

// Delete removes an immunization card.
//
// @Summary      Delete immunization
// @Tags         immunizations
// @Produce      json
// @Param        card_no  path      string  true  "Card number"
// @Success      200      {object}  response
// @Failure      404      {object}  ErrorResponse
// @Router       /api/immunizations/{card_no} [delete]
func (h *ImmunizationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("card_no")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "immunization deleted", nil)
}
