package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stnicholas-trust/staff-portal/internal/api/metrics"
	"github.com/stnicholas-trust/staff-portal/internal/api/middleware"
	"github.com/stnicholas-trust/staff-portal/internal/core/ports"
)

// FederationConfig controls how a completed federated login is handed back
// to the browser.
type FederationConfig struct {
	// Mode is the deployment's token transport (middleware.ModeBearer or
	// middleware.ModeCookie).
	Mode string
	// PostLoginURL is where the browser lands after a successful callback.
	PostLoginURL string
	// SessionTTL bounds the cookie lifetime in cookie mode.
	SessionTTL time.Duration
	// CrossSite widens the cookie to SameSite=None for deployments where the
	// portal frontend lives on a different origin than this API.
	CrossSite bool
}

// FederationHandler serves the provider redirect and callback endpoints.
type FederationHandler struct {
	federation ports.FederationService
	cfg        FederationConfig
}

func NewFederationHandler(federation ports.FederationService, cfg FederationConfig) *FederationHandler {
	return &FederationHandler{federation: federation, cfg: cfg}
}

// Begin redirects the caller to the provider authorization endpoint.
func (h *FederationHandler) Begin(c echo.Context) error {
	url, err := h.federation.LoginURL(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, url)
}

// Callback completes the flow and hands the session token to the browser:
// cookie mode sets an HTTP-only Secure cookie, bearer mode passes the token
// in the redirect fragment so it never reaches server logs on the next hop.
func (h *FederationHandler) Callback(c echo.Context) error {
	start := time.Now()

	token, _, err := h.federation.HandleCallback(
		c.Request().Context(),
		c.QueryParam("code"),
		c.QueryParam("state"),
	)
	metrics.FederatedLoginDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FederatedLoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.FederatedLoginsTotal.WithLabelValues("success").Inc()

	if h.cfg.Mode == middleware.ModeCookie {
		sameSite := http.SameSiteLaxMode
		if h.cfg.CrossSite {
			sameSite = http.SameSiteNoneMode
		}
		c.SetCookie(&http.Cookie{
			Name:     middleware.CookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(h.cfg.SessionTTL),
			HttpOnly: true,
			Secure:   true,
			SameSite: sameSite,
		})
		return c.Redirect(http.StatusFound, h.cfg.PostLoginURL)
	}

	return c.Redirect(http.StatusFound, h.cfg.PostLoginURL+"#token="+token)
}
