package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mianwali/crop-advisory/internal/api/metrics"
	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

// TokenIssuer signs a bearer token for an authenticated user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService ports.AuthService
	tokens      TokenIssuer
}

func NewAuthHandler(authService ports.AuthService, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// Login authenticates a user for a role and opens the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials and requested role"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCredential):
			metrics.AuthAttemptsTotal.WithLabelValues("empty_credential").Inc()
		default:
			metrics.AuthAttemptsTotal.WithLabelValues("failed").Inc()
		}
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()

	token, err := h.tokens.Issue(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout closes the active session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}
