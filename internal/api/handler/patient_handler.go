package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/core/ports"
)

type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// Create records a patient visit.
//
// @Summary      Create patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body      createPatientRequest  true  "Patient"
// @Success      201   {object}  response{data=domain.Patient}
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /api/patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	var req createPatientRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	p, err := h.service.Create(c.Request().Context(), user, req.toDomain())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "patient created", p)
}

// List pages through patients in insertion order.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Param        cursor  query     string  false  "Cursor from the previous page"
// @Param        limit   query     int     false  "Page size (default 50, max 100)"
// @Success      200     {object}  response{data=pageResponse[domain.Patient]}
// @Failure      401     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Router       /api/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}
	res, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "patients", newPage(res.Items, res.NextCursor))
}

// Get returns one patient.
//
// @Summary      Get patient
// @Tags         patients
// @Produce      json
// @Param        hospital_no  path      string  true  "Hospital number"
// @Success      200          {object}  response{data=domain.Patient}
// @Failure      404          {object}  ErrorResponse
// @Router       /api/patients/{hospital_no} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("hospital_no"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "patient", p)
}

// Update merges the supplied fields into a patient.
//
// @Summary      Update patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        hospital_no  path      string                true  "Hospital number"
// @Param        body         body      updatePatientRequest  true  "Fields to change"
// @Success      200          {object}  response{data=domain.Patient}
// @Failure      404          {object}  ErrorResponse
// @Failure      422          {object}  ErrorResponse
// @Router       /api/patients/{hospital_no} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	var req updatePatientRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	p, err := h.service.Update(c.Request().Context(), user, c.Param("hospital_no"), req.toDomain())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "patient updated", p)
}

// Delete removes a patient.
//
// @Summary      Delete patient
// @Tags         patients
// @Produce      json
// @Param        hospital_no  path      string  true  "Hospital number"
// @Success      200          {object}  response
// @Failure      404          {object}  ErrorResponse
// @Router       /api/patients/{hospital_no} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("hospital_no")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "patient deleted", nil)
}

