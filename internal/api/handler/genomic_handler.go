package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/genosentinel/auth-gateway/internal/upstream"
)

// GenomicHandler exposes the genomic backend's resources through the gateway.
// Bodies pass through with the backend's own snake_case field naming.
type GenomicHandler struct {
	client *upstream.GenomicClient
}

func NewGenomicHandler(client *upstream.GenomicClient) *GenomicHandler {
	return &GenomicHandler{client: client}
}

func geneID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}

func uuidID(c echo.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "id must be a valid UUID")
	}
	return id.String(), nil
}

// --- Genes ---

// CreateGene proxies POST /genomic/genes.
//
// @Summary      Create gene
// @Tags         genomic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upstream.CreateGene  true  "Gene data"
// @Success      201   {object}  upstream.Gene
// @Failure      400   {object}  errorResponse
// @Router       /genomic/genes [post]
func (h *GenomicHandler) CreateGene(c echo.Context) error {
	var req upstream.CreateGene
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	gene, err := h.client.CreateGene(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, gene)
}

// ListGenes proxies GET /genomic/genes.
//
// @Summary      List genes
// @Tags         genomic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  upstream.Gene
// @Router       /genomic/genes [get]
func (h *GenomicHandler) ListGenes(c echo.Context) error {
	genes, err := h.client.ListGenes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genes)
}

// GetGene proxies GET /genomic/genes/:id.
//
// @Summary      Get gene by ID
// @Tags         genomic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Gene ID"
// @Success      200  {object}  upstream.Gene
// @Failure      404  {object}  errorResponse
// @Router       /genomic/genes/{id} [get]
func (h *GenomicHandler) GetGene(c echo.Context) error {
	id, err := geneID(c)
	if err != nil {
		return err
	}

	gene, err := h.client.GetGene(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gene)
}

// UpdateGene proxies PATCH /genomic/genes/:id.
//
// @Summary      Update gene
// @Tags         genomic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Gene ID"
// @Param        body  body      upstream.UpdateGene  true  "Fields to update"
// @Success      200   {object}  upstream.Gene
// @Failure      404   {object}  errorResponse
// @Router       /genomic/genes/{id} [patch]
func (h *GenomicHandler) UpdateGene(c echo.Context) error {
	id, err := geneID(c)
	if err != nil {
		return err
	}

	var req upstream.UpdateGene
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	gene, err := h.client.UpdateGene(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gene)
}

// DeleteGene proxies DELETE /genomic/genes/:id.
//
// @Summary      Delete gene
// @Tags         genomic
// @Security     BearerAuth
// @Param        id  path  int  true  "Gene ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /genomic/genes/{id} [delete]
func (h *GenomicHandler) DeleteGene(c echo.Context) error {
	id, err := geneID(c)
	if err != nil {
		return err
	}

	if err := h.client.DeleteGene(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Genetic variants ---

// CreateVariant proxies POST /genomic/variants.
//
// @Summary      Create genetic variant
// @Tags         genomic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upstream.CreateGeneticVariant  true  "Variant data"
// @Success      201   {object}  upstream.GeneticVariant
// @Failure      400   {object}  errorResponse
// @Router       /genomic/variants [post]
func (h *GenomicHandler) CreateVariant(c echo.Context) error {
	var req upstream.CreateGeneticVariant
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	variant, err := h.client.CreateVariant(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, variant)
}

// ListVariants proxies GET /genomic/variants.
//
// @Summary      List genetic variants
// @Tags         genomic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  upstream.GeneticVariant
// @Router       /genomic/variants [get]
func (h *GenomicHandler) ListVariants(c echo.Context) error {
	variants, err := h.client.ListVariants(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, variants)
}

// GetVariant proxies GET /genomic/variants/:id.
//
// @Summary      Get genetic variant by ID
// @Tags         genomic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Variant UUID"
// @Success      200  {object}  upstream.GeneticVariant
// @Failure      404  {object}  errorResponse
// @Router       /genomic/variants/{id} [get]
func (h *GenomicHandler) GetVariant(c echo.Context) error {
	id, err := uuidID(c)
	if err != nil {
		return err
	}

	variant, err := h.client.GetVariant(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, variant)
}

// UpdateVariant proxies PATCH /genomic/variants/:id.
//
// @Summary      Update genetic variant
// @Tags         genomic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                         true  "Variant UUID"
// @Param        body  body      upstream.UpdateGeneticVariant  true  "Fields to update"
// @Success      200   {object}  upstream.GeneticVariant
// @Failure      404   {object}  errorResponse
// @Router       /genomic/variants/{id} [patch]
func (h *GenomicHandler) UpdateVariant(c echo.Context) error {
	id, err := uuidID(c)
	if err != nil {
		return err
	}

	var req upstream.UpdateGeneticVariant
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	variant, err := h.client.UpdateVariant(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, variant)
}

// DeleteVariant proxies DELETE /genomic/variants/:id.
//
// @Summary      Delete genetic variant
// @Tags         genomic
// @Security     BearerAuth
// @Param        id  path  string  true  "Variant UUID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /genomic/variants/{id} [delete]
func (h *GenomicHandler) DeleteVariant(c echo.Context) error {
	id, err := uuidID(c)
	if err != nil {
		return err
	}

	if err := h.client.DeleteVariant(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Patient variant reports ---

// CreateReport proxies POST /genomic/reports.
//
// @Summary      Create patient variant report
// @Tags         genomic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upstream.CreatePatientVariantReport  true  "Report data"
// @Success      201   {object}  upstream.PatientVariantReport
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /genomic/reports [post]
func (h *GenomicHandler) CreateReport(c echo.Context) error {
	var req upstream.CreatePatientVariantReport
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.client.CreateReport(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, report)
}

// ListReports proxies GET /genomic/reports.
//
// @Summary      List patient variant reports
// @Tags         genomic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  upstream.PatientVariantReport
// @Router       /genomic/reports [get]
func (h *GenomicHandler) ListReports(c echo.Context) error {
	reports, err := h.client.ListReports(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// GetReport proxies GET /genomic/reports/:id.
//
// @Summary      Get patient variant report by ID
// @Tags         genomic
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Report UUID"
// @Success      200  {object}  upstream.PatientVariantReport
// @Failure      404  {object}  errorResponse
// @Router       /genomic/reports/{id} [get]
func (h *GenomicHandler) GetReport(c echo.Context) error {
	id, err := uuidID(c)
	if err != nil {
		return err
	}

	report, err := h.client.GetReport(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// UpdateReport proxies PATCH /genomic/reports/:id.
//
// @Summary      Update patient variant report
// @Tags         genomic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                               true  "Report UUID"
// @Param        body  body      upstream.UpdatePatientVariantReport  true  "Fields to update"
// @Success      200   {object}  upstream.PatientVariantReport
// @Failure      404   {object}  errorResponse
// @Router       /genomic/reports/{id} [patch]
func (h *GenomicHandler) UpdateReport(c echo.Context) error {
	id, err := uuidID(c)
	if err != nil {
		return err
	}

	var req upstream.UpdatePatientVariantReport
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	report, err := h.client.UpdateReport(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// DeleteReport proxies DELETE /genomic/reports/:id.
//
// @Summary      Delete patient variant report
// @Tags         genomic
// @Security     BearerAuth
// @Param        id  path  string  true  "Report UUID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /genomic/reports/{id} [delete]
func (h *GenomicHandler) DeleteReport(c echo.Context) error {
	id, err := uuidID(c)
	if err != nil {
		return err
	}

	if err := h.client.DeleteReport(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
