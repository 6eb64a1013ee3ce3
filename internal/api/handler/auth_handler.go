package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stnicholas-trust/staff-portal/internal/api/metrics"
	"github.com/stnicholas-trust/staff-portal/internal/api/middleware"
	"github.com/stnicholas-trust/staff-portal/internal/core/ports"
)

// AuthHandler serves credential registration, login, logout, and the
// current-identity endpoint.
type AuthHandler struct {
	authService ports.AuthService
	mode        string
}

func NewAuthHandler(authService ports.AuthService, mode string) *AuthHandler {
	return &AuthHandler{authService: authService, mode: mode}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a credential-based account with the default role.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "account created"})
}

// Login verifies credentials and returns a session token with the role.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, Role: user.Role})
}

type meResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Me returns the verified claims of the calling identity.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	resp := meResponse{ID: claims.Subject, Role: claims.Role}
	if claims.IssuedAt != nil {
		resp.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout clears the session cookie in cookie mode. Tokens themselves cannot
// be revoked; in bearer mode the client simply discards its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	if h.mode == middleware.ModeCookie {
		c.SetCookie(&http.Cookie{
			Name:     middleware.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
		})
	}
	return c.NoContent(http.StatusNoContent)
}
