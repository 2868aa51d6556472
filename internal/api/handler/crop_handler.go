package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/mianwali/crop-advisory/internal/api/metrics"
	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

// CropHandler serves the crop catalog and the region list.
type CropHandler struct {
	catalog ports.CatalogService
	search  ports.RecommendationService
}

func NewCropHandler(catalog ports.CatalogService, search ports.RecommendationService) *CropHandler {
	return &CropHandler{catalog: catalog, search: search}
}

// List handles GET /v1/crops.
//
// @Summary      List or search crops
// @Description  Without q the full catalog is returned in insertion order. With q the
// @Description  crops whose name, season or region contain q (case-insensitive) are returned.
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Search text"
// @Success      200  {object}  cropListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/crops [get]
func (h *CropHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusOK, toCropList(h.catalog.ListCrops(ctx)))
	}
	return c.JSON(http.StatusOK, toCropList(h.search.SearchCrops(ctx, q)))
}

// Create handles POST /v1/crops.
//
// @Summary      Add a crop
// @Tags         crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCropRequest  true  "New crop"
// @Success      201   {object}  cropResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/crops [post]
func (h *CropHandler) Create(c echo.Context) error {
	var req createCropRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	crop, err := h.catalog.AddCrop(c.Request().Context(), ports.AddCropInput{
		Name:             req.Name,
		Season:           req.Season,
		SoilType:         req.SoilType,
		Region:           req.Region,
		WaterRequirement: req.WaterRequirement,
		ExpectedYield:    req.ExpectedYield,
	})
	metrics.CropMutationsTotal.WithLabelValues("add", mutationResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCropResponse(*crop))
}

// Update handles PATCH /v1/crops/:name.
//
// @Summary      Update a crop
// @Description  Only season, soil type and expected yield can change. Omitted fields keep their value.
// @Tags         crops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string             true  "Exact crop name"
// @Param        body  body      updateCropRequest  true  "Fields to change"
// @Success      200   {object}  cropResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/crops/{name} [patch]
func (h *CropHandler) Update(c echo.Context) error {
	var req updateCropRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	crop, err := h.catalog.UpdateCrop(c.Request().Context(), cropName(c), ports.UpdateCropInput{
		Season:        req.Season,
		SoilType:      req.SoilType,
		ExpectedYield: req.ExpectedYield,
	})
	metrics.CropMutationsTotal.WithLabelValues("update", mutationResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCropResponse(*crop))
}

// Delete handles DELETE /v1/crops/:name.
//
// @Summary      Delete a crop
// @Tags         crops
// @Security     BearerAuth
// @Param        name  path  string  true  "Exact crop name"
// @Success      204
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/crops/{name} [delete]
func (h *CropHandler) Delete(c echo.Context) error {
	err := h.catalog.DeleteCrop(c.Request().Context(), cropName(c))
	metrics.CropMutationsTotal.WithLabelValues("delete", mutationResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Regions handles GET /v1/regions.
//
// @Summary      List regions
// @Tags         regions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Region
// @Router       /v1/regions [get]
func (h *CropHandler) Regions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.ListRegions(c.Request().Context()))
}

// cropName returns the decoded :name parameter. Echo routes on the decoded
// path unless the request carries a distinct RawPath, in which case the
// parameter is still escaped.
func cropName(c echo.Context) string {
	raw := c.Param("name")
	if c.Request().URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func mutationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrDuplicateCropName):
		return "duplicate"
	case errors.Is(err, domain.ErrCropNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRegionNotFound):
		return "unknown_region"
	default:
		return "invalid"
	}
}
