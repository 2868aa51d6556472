package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mianwali/crop-advisory/internal/api/metrics"
	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

type RecommendationHandler struct {
	service ports.RecommendationService
}

func NewRecommendationHandler(service ports.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Recommend handles POST /v1/recommendations.
//
// @Summary      Rank crops for a field
// @Description  Scores every crop against soil type, season and region and returns the
// @Description  crops with a positive score, best first.
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recommendationRequest  true  "Field conditions"
// @Success      200   {object}  recommendationResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/recommendations [post]
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	var req recommendationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	recs := h.service.Recommend(c.Request().Context(), domain.Criteria{
		SoilType: req.SoilType,
		Season:   req.Season,
		Region:   req.Region,
	})

	metrics.RecommendationResults.Observe(float64(len(recs)))
	if len(recs) > 0 {
		metrics.TopRecommendationScore.Observe(float64(recs[0].Score))
	}

	data := make([]recommendationItem, 0, len(recs))
	for i, r := range recs {
		data = append(data, recommendationItem{Rank: i + 1, Score: r.Score, Crop: toCropResponse(r.Crop)})
	}
	return c.JSON(http.StatusOK, recommendationResponse{Data: data, Count: len(data)})
}

// SoilSuggestions handles GET /v1/suggestions/soil.
//
// @Summary      Crops suited to a soil type
// @Tags         recommendations
// @Produce      json
// @Security     BearerAuth
// @Param        soil_type  query     string  true  "Soil type (partial match)"
// @Success      200        {object}  cropListResponse
// @Failure      400        {object}  errorResponse
// @Router       /v1/suggestions/soil [get]
func (h *RecommendationHandler) SoilSuggestions(c echo.Context) error {
	soil := c.QueryParam("soil_type")
	if soil == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "soil_type is required")
	}
	return c.JSON(http.StatusOK, toCropList(h.service.SoilSuggestions(c.Request().Context(), soil)))
}
