package handler

import (
	"github.com/shopspring/decimal"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// loginRequest is checked by the auth service so that blank fields and
// unknown roles map to the same errors as any other client.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createCropRequest struct {
	Name             string `json:"name"              validate:"required"`
	Season           string `json:"season"            validate:"required,season"`
	SoilType         string `json:"soil_type"         validate:"required,soil"`
	Region           string `json:"region"            validate:"required"`
	WaterRequirement string `json:"water_requirement" validate:"required,water"`
	ExpectedYield    string `json:"expected_yield"    validate:"required"`
}

// updateCropRequest fields are optional; absent fields are left unchanged.
type updateCropRequest struct {
	Season        *string `json:"season"         validate:"omitempty,season"`
	SoilType      *string `json:"soil_type"      validate:"omitempty,soil"`
	ExpectedYield *string `json:"expected_yield"`
}

type recommendationRequest struct {
	SoilType string `json:"soil_type" validate:"required"`
	Season   string `json:"season"    validate:"required"`
	Region   string `json:"region"    validate:"required"`
}

type cropResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Season           string          `json:"season"`
	SoilType         string          `json:"soil_type"`
	Region           string          `json:"region"`
	WaterRequirement string          `json:"water_requirement"`
	ExpectedYield    decimal.Decimal `json:"expected_yield"`
}

type cropListResponse struct {
	Data  []cropResponse `json:"data"`
	Count int            `json:"count"`
}

type recommendationItem struct {
	Rank  int          `json:"rank"`
	Score int          `json:"score"`
	Crop  cropResponse `json:"crop"`
}

type recommendationResponse struct {
	Data  []recommendationItem `json:"data"`
	Count int                  `json:"count"`
}

type auditEntryResponse struct {
	Time    string `json:"time"`
	Message string `json:"message"`
}

func toCropResponse(c domain.Crop) cropResponse {
	return cropResponse{
		ID:               c.ID,
		Name:             c.Name,
		Season:           c.Season,
		SoilType:         c.SoilType,
		Region:           c.Region,
		WaterRequirement: string(c.WaterRequirement),
		ExpectedYield:    c.ExpectedYield,
	}
}

func toCropList(crops []domain.Crop) cropListResponse {
	data := make([]cropResponse, 0, len(crops))
	for _, c := range crops {
		data = append(data, toCropResponse(c))
	}
	return cropListResponse{Data: data, Count: len(data)}
}
