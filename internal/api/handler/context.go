package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stnicholas-trust/staff-portal/internal/api/middleware"
	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
)

// ctxClaims extracts the verified claims injected by the Auth middleware.
// Their presence proves the middleware ran; a handler reached without them is
// a routing mistake and fails closed with 401.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if claims == nil || claims.Subject == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return claims, nil
}
