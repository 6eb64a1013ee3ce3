package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stnicholas-trust/staff-portal/internal/core/ports"
)

// Token transport modes. A deployment picks exactly one; the middleware, the
// federation callback, and logout all follow the same setting.
const (
	ModeBearer = "bearer"
	ModeCookie = "cookie"
)

// CookieName is the session cookie used in cookie mode.
const CookieName = "auth"

// Context keys populated by Auth for downstream handlers.
const (
	ClaimsKey = "claims"
	RoleKey   = "role"
)

// Auth extracts the session token per the deployment's transport mode,
// verifies it, and injects the claims into the request context. Missing and
// invalid tokens both map to 401 with a generic body.
func Auth(tokens ports.TokenService, mode string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractToken(c, mode)
			if err != nil {
				return err
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set(ClaimsKey, claims)
			c.Set(RoleKey, claims.Role)

			return next(c)
		}
	}
}

func extractToken(c echo.Context, mode string) (string, error) {
	if mode == ModeCookie {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		return cookie.Value, nil
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return parts[1], nil
}
