package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// CatalogSource is the read side of the catalog the readiness probe inspects.
type CatalogSource interface {
	ListCrops(ctx context.Context) []domain.Crop
	ListRegions(ctx context.Context) []domain.Region
}

// ReadinessHandler handles GET /health/ready. The service is ready once the
// seed has loaded at least one region, since no crop can be added without one.
type ReadinessHandler struct {
	catalog CatalogSource
}

func NewReadinessHandler(catalog CatalogSource) *ReadinessHandler {
	return &ReadinessHandler{catalog: catalog}
}

type componentStatus struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type readinessResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()
	regions := len(h.catalog.ListRegions(ctx))
	crops := len(h.catalog.ListCrops(ctx))

	components := map[string]componentStatus{
		"regions": {Status: "ok", Count: regions},
		"crops":   {Status: "ok", Count: crops},
	}

	status, httpStatus := "ok", http.StatusOK
	if regions == 0 {
		components["regions"] = componentStatus{Status: "empty"}
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:     status,
		Components: components,
	})
}
