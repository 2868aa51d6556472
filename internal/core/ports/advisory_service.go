package ports

import (
	"context"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// AddCropInput carries the raw fields of a new crop. ExpectedYield is parsed
// as a decimal by the service.
type AddCropInput struct {
	Name             string
	Season           string
	SoilType         string
	Region           string
	WaterRequirement string
	ExpectedYield    string
}

// UpdateCropInput lists the mutable crop fields. Nil fields are left as they
// are.
type UpdateCropInput struct {
	Season        *string
	SoilType      *string
	ExpectedYield *string
}

// CatalogService manages the crop catalog.
type CatalogService interface {
	AddCrop(ctx context.Context, input AddCropInput) (*domain.Crop, error)
	UpdateCrop(ctx context.Context, name string, input UpdateCropInput) (*domain.Crop, error)
	DeleteCrop(ctx context.Context, name string) error
	ListCrops(ctx context.Context) []domain.Crop
	ListRegions(ctx context.Context) []domain.Region
}

// AuthService verifies credentials and tracks the single active session.
type AuthService interface {
	Authenticate(ctx context.Context, username, password, role string) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, bool)
	ListUsers(ctx context.Context) []domain.UserSummary
}

// RecommendationService answers read-only crop queries.
type RecommendationService interface {
	Recommend(ctx context.Context, criteria domain.Criteria) []domain.Recommendation
	SearchCrops(ctx context.Context, query string) []domain.Crop
	SoilSuggestions(ctx context.Context, soilType string) []domain.Crop
}

// AuditService exposes the system history.
type AuditService interface {
	AppendAudit(ctx context.Context, message string)
	AuditSnapshot(ctx context.Context) []domain.AuditEntry
	Report(ctx context.Context) domain.Report
}

// AdvisoryService is the full operation set offered to transports.
type AdvisoryService interface {
	CatalogService
	AuthService
	RecommendationService
	AuditService
}
