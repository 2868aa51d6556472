package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

// AdminHandler serves the administrator views: audit history, users and reports.
type AdminHandler struct {
	audit ports.AuditService
	auth  ports.AuthService
}

func NewAdminHandler(audit ports.AuditService, auth ports.AuthService) *AdminHandler {
	return &AdminHandler{audit: audit, auth: auth}
}

// Audit handles GET /v1/audit.
//
// @Summary      Audit history
// @Description  Returns the retained audit entries, oldest first.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   auditEntryResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/audit [get]
func (h *AdminHandler) Audit(c echo.Context) error {
	entries := h.audit.AuditSnapshot(c.Request().Context())
	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditEntryResponse{
			Time:    e.Time.Format(domain.AuditTimeLayout),
			Message: e.Message,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Users handles GET /v1/users.
//
// @Summary      Registered users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.UserSummary
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	return c.JSON(http.StatusOK, h.auth.ListUsers(c.Request().Context()))
}

// Reports handles GET /v1/reports.
//
// @Summary      Catalog report
// @Description  Crops grouped by region and by season, with system totals.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Report
// @Failure      403  {object}  errorResponse
// @Router       /v1/reports [get]
func (h *AdminHandler) Reports(c echo.Context) error {
	return c.JSON(http.StatusOK, h.audit.Report(c.Request().Context()))
}
