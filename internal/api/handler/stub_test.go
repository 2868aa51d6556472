package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

var _ ports.AdvisoryService = (*stubAdvisory)(nil)

// stubAdvisory implements ports.AdvisoryService with overridable funcs.
// Unset funcs return zero values.
type stubAdvisory struct {
	addCropFn      func(ctx context.Context, in ports.AddCropInput) (*domain.Crop, error)
	updateCropFn   func(ctx context.Context, name string, in ports.UpdateCropInput) (*domain.Crop, error)
	deleteCropFn   func(ctx context.Context, name string) error
	listCropsFn    func(ctx context.Context) []domain.Crop
	authenticateFn func(ctx context.Context, username, password, role string) (*domain.User, error)
	logoutFn       func(ctx context.Context) error
	recommendFn    func(ctx context.Context, c domain.Criteria) []domain.Recommendation
	searchFn       func(ctx context.Context, q string) []domain.Crop
	soilFn         func(ctx context.Context, soil string) []domain.Crop
	snapshotFn     func(ctx context.Context) []domain.AuditEntry
	regions        []domain.Region
	users          []domain.UserSummary
	report         domain.Report
}

func (s *stubAdvisory) AddCrop(ctx context.Context, in ports.AddCropInput) (*domain.Crop, error) {
	return s.addCropFn(ctx, in)
}

func (s *stubAdvisory) UpdateCrop(ctx context.Context, name string, in ports.UpdateCropInput) (*domain.Crop, error) {
	return s.updateCropFn(ctx, name, in)
}

func (s *stubAdvisory) DeleteCrop(ctx context.Context, name string) error {
	return s.deleteCropFn(ctx, name)
}

func (s *stubAdvisory) ListCrops(ctx context.Context) []domain.Crop {
	if s.listCropsFn == nil {
		return nil
	}
	return s.listCropsFn(ctx)
}

func (s *stubAdvisory) ListRegions(context.Context) []domain.Region { return s.regions }

func (s *stubAdvisory) Authenticate(ctx context.Context, username, password, role string) (*domain.User, error) {
	return s.authenticateFn(ctx, username, password, role)
}

func (s *stubAdvisory) Logout(ctx context.Context) error { return s.logoutFn(ctx) }

func (s *stubAdvisory) CurrentUser(context.Context) (*domain.User, bool) { return nil, false }

func (s *stubAdvisory) ListUsers(context.Context) []domain.UserSummary { return s.users }

func (s *stubAdvisory) Recommend(ctx context.Context, c domain.Criteria) []domain.Recommendation {
	return s.recommendFn(ctx, c)
}

func (s *stubAdvisory) SearchCrops(ctx context.Context, q string) []domain.Crop {
	return s.searchFn(ctx, q)
}

func (s *stubAdvisory) SoilSuggestions(ctx context.Context, soil string) []domain.Crop {
	return s.soilFn(ctx, soil)
}

func (s *stubAdvisory) AppendAudit(context.Context, string) {}

func (s *stubAdvisory) AuditSnapshot(ctx context.Context) []domain.AuditEntry {
	return s.snapshotFn(ctx)
}

func (s *stubAdvisory) Report(context.Context) domain.Report { return s.report }

type stubTokens struct {
	token string
	err   error
}

func (s stubTokens) Issue(*domain.User) (string, error) { return s.token, s.err }

// newContext builds an echo context with the JSON body and the validator wired.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
