package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/genosentinel/auth-gateway/internal/upstream"
)

// ClinicHandler exposes the clinic backend's resources through the gateway.
// Bodies pass through with the backend's own camelCase field naming.
type ClinicHandler struct {
	client *upstream.ClinicClient
}

func NewClinicHandler(client *upstream.ClinicClient) *ClinicHandler {
	return &ClinicHandler{client: client}
}

func intID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}

// --- Patients ---

// CreatePatient proxies POST /nestjs/patients.
//
// @Summary      Create patient
// @Tags         clinic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upstream.CreatePatient  true  "Patient data"
// @Success      201   {object}  upstream.Patient
// @Failure      400   {object}  errorResponse
// @Router       /nestjs/patients [post]
func (h *ClinicHandler) CreatePatient(c echo.Context) error {
	var req upstream.CreatePatient
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.client.CreatePatient(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, patient)
}

// ListPatients proxies GET /nestjs/patients.
//
// @Summary      List patients
// @Tags         clinic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  upstream.Patient
// @Router       /nestjs/patients [get]
func (h *ClinicHandler) ListPatients(c echo.Context) error {
	patients, err := h.client.ListPatients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

// GetPatient proxies GET /nestjs/patients/:id.
//
// @Summary      Get patient by ID
// @Tags         clinic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Patient ID"
// @Success      200  {object}  upstream.Patient
// @Failure      404  {object}  errorResponse
// @Router       /nestjs/patients/{id} [get]
func (h *ClinicHandler) GetPatient(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}

	patient, err := h.client.GetPatient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// UpdatePatient proxies PATCH /nestjs/patients/:id.
//
// @Summary      Update patient
// @Tags         clinic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Patient ID"
// @Param        body  body      upstream.UpdatePatient  true  "Fields to update"
// @Success      200   {object}  upstream.Patient
// @Failure      404   {object}  errorResponse
// @Router       /nestjs/patients/{id} [patch]
func (h *ClinicHandler) UpdatePatient(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}

	var req upstream.UpdatePatient
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patient, err := h.client.UpdatePatient(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// DeactivatePatient proxies PATCH /nestjs/patients/:id/deactivate. Patients
// are never hard-deleted.
//
// @Summary      Deactivate patient
// @Tags         clinic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Patient ID"
// @Success      200  {object}  upstream.Patient
// @Failure      404  {object}  errorResponse
// @Router       /nestjs/patients/{id}/deactivate [patch]
func (h *ClinicHandler) DeactivatePatient(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}

	patient, err := h.client.DeactivatePatient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// --- Tumor types ---

// CreateTumorType proxies POST /nestjs/tumor-types.
//
// @Summary      Create tumor type
// @Tags         clinic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upstream.CreateTumorType  true  "Tumor type data"
// @Success      201   {object}  upstream.TumorType
// @Failure      400   {object}  errorResponse
// @Router       /nestjs/tumor-types [post]
func (h *ClinicHandler) CreateTumorType(c echo.Context) error {
	var req upstream.CreateTumorType
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tt, err := h.client.CreateTumorType(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tt)
}

// ListTumorTypes proxies GET /nestjs/tumor-types.
//
// @Summary      List tumor types
// @Tags         clinic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  upstream.TumorType
// @Router       /nestjs/tumor-types [get]
func (h *ClinicHandler) ListTumorTypes(c echo.Context) error {
	tts, err := h.client.ListTumorTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tts)
}

// GetTumorType proxies GET /nestjs/tumor-types/:id.
//
// @Summary      Get tumor type by ID
// @Tags         clinic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tumor type ID"
// @Success      200  {object}  upstream.TumorType
// @Failure      404  {object}  errorResponse
// @Router       /nestjs/tumor-types/{id} [get]
func (h *ClinicHandler) GetTumorType(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}

	tt, err := h.client.GetTumorType(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tt)
}

// UpdateTumorType proxies PATCH /nestjs/tumor-types/:id.
//
// @Summary      Update tumor type
// @Tags         clinic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Tumor type ID"
// @Param        body  body      upstream.UpdateTumorType  true  "Fields to update"
// @Success      200   {object}  upstream.TumorType
// @Failure      404   {object}  errorResponse
// @Router       /nestjs/tumor-types/{id} [patch]
func (h *ClinicHandler) UpdateTumorType(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}

	var req upstream.UpdateTumorType
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	tt, err := h.client.UpdateTumorType(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tt)
}

// DeleteTumorType proxies DELETE /nestjs/tumor-types/:id.
//
// @Summary      Delete tumor type
// @Tags         clinic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tumor type ID"
// @Success      200  {object}  upstream.DeleteResponse
// @Failure      404  {object}  errorResponse
// @Router       /nestjs/tumor-types/{id} [delete]
func (h *ClinicHandler) DeleteTumorType(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}

	resp, err := h.client.DeleteTumorType(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// --- Clinical records ---

// CreateClinicalRecord proxies POST /nestjs/clinical-records.
//
// @Summary      Create clinical record
// @Tags         clinic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upstream.CreateClinicalRecord  true  "Clinical record data"
// @Success      201   {object}  upstream.ClinicalRecord
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /nestjs/clinical-records [post]
func (h *ClinicHandler) CreateClinicalRecord(c echo.Context) error {
	var req upstream.CreateClinicalRecord
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.client.CreateClinicalRecord(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// ListClinicalRecords proxies GET /nestjs/clinical-records.
//
// @Summary      List clinical records
// @Tags         clinic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  upstream.ClinicalRecord
// @Router       /nestjs/clinical-records [get]
func (h *ClinicHandler) ListClinicalRecords(c echo.Context) error {
	records, err := h.client.ListClinicalRecords(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// GetClinicalRecord proxies GET /nestjs/clinical-records/:id.
//
// @Summary      Get clinical record by ID
// @Tags         clinic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Clinical record ID"
// @Success      200  {object}  upstream.ClinicalRecord
// @Failure      404  {object}  errorResponse
// @Router       /nestjs/clinical-records/{id} [get]
func (h *ClinicHandler) GetClinicalRecord(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}

	record, err := h.client.GetClinicalRecord(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// UpdateClinicalRecord proxies PATCH /nestjs/clinical-records/:id.
//
// @Summary      Update clinical record
// @Tags         clinic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                            true  "Clinical record ID"
// @Param        body  body      upstream.UpdateClinicalRecord  true  "Fields to update"
// @Success      200   {object}  upstream.ClinicalRecord
// @Failure      404   {object}  errorResponse
// @Router       /nestjs/clinical-records/{id} [patch]
func (h *ClinicHandler) UpdateClinicalRecord(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}

	var req upstream.UpdateClinicalRecord
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	record, err := h.client.UpdateClinicalRecord(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// DeleteClinicalRecord proxies DELETE /nestjs/clinical-records/:id.
//
// @Summary      Delete clinical record
// @Tags         clinic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Clinical record ID"
// @Success      200  {object}  upstream.DeleteResponse
// @Failure      404  {object}  errorResponse
// @Router       /nestjs/clinical-records/{id} [delete]
func (h *ClinicHandler) DeleteClinicalRecord(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}

	resp, err := h.client.DeleteClinicalRecord(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
