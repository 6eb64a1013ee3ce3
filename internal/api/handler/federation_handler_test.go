package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stnicholas-trust/staff-portal/internal/api/middleware"
	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
)

type stubFederationService struct {
	loginURLFn func(ctx context.Context) (string, error)
	callbackFn func(ctx context.Context, code, state string) (string, *domain.User, error)
}

func (s *stubFederationService) LoginURL(ctx context.Context) (string, error) {
	return s.loginURLFn(ctx)
}

func (s *stubFederationService) HandleCallback(ctx context.Context, code, state string) (string, *domain.User, error) {
	return s.callbackFn(ctx, code, state)
}

func TestFederationHandler_Begin(t *testing.T) {
	e := newTestEcho()
	stub := &stubFederationService{
		loginURLFn: func(ctx context.Context) (string, error) {
			return "https://idp.example.com/authorize?state=abc", nil
		},
	}
	handler := NewFederationHandler(stub, FederationConfig{Mode: middleware.ModeBearer, PostLoginURL: "/"})

	req := httptest.NewRequest(http.MethodGet, "/auth/provider", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Begin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "https://idp.example.com/authorize?state=abc" {
		t.Fatalf("unexpected redirect: %s", got)
	}
}

func TestFederationHandler_Callback_BearerMode(t *testing.T) {
	e := newTestEcho()
	stub := &stubFederationService{
		callbackFn: func(ctx context.Context, code, state string) (string, *domain.User, error) {
			if code != "code-1" || state != "state-1" {
				t.Fatalf("unexpected args: %s %s", code, state)
			}
			return "signed-token", &domain.User{ID: "user-1", Role: domain.RoleClinical}, nil
		},
	}
	handler := NewFederationHandler(stub, FederationConfig{
		Mode:         middleware.ModeBearer,
		PostLoginURL: "https://portal.example.com/",
		SessionTTL:   2 * time.Hour,
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/provider/callback?code=code-1&state=state-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Callback(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); !strings.HasSuffix(got, "#token=signed-token") {
		t.Fatalf("expected token in fragment, got %s", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("bearer mode must not set cookies")
	}
}

func TestFederationHandler_Callback_CookieMode(t *testing.T) {
	e := newTestEcho()
	stub := &stubFederationService{
		callbackFn: func(ctx context.Context, code, state string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "user-1", Role: domain.RoleClinical}, nil
		},
	}
	handler := NewFederationHandler(stub, FederationConfig{
		Mode:         middleware.ModeCookie,
		PostLoginURL: "/",
		SessionTTL:   2 * time.Hour,
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/provider/callback?code=code-1&state=state-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Callback(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != middleware.CookieName || cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if !cookie.HttpOnly || !cookie.Secure {
		t.Fatalf("cookie must be HTTP-only and Secure: %+v", cookie)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax for same-origin deployment, got %v", cookie.SameSite)
	}
}

func TestFederationHandler_Callback_CrossSiteCookie(t *testing.T) {
	e := newTestEcho()
	stub := &stubFederationService{
		callbackFn: func(ctx context.Context, code, state string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "user-1", Role: domain.RoleClinical}, nil
		},
	}
	handler := NewFederationHandler(stub, FederationConfig{
		Mode:         middleware.ModeCookie,
		PostLoginURL: "/",
		SessionTTL:   2 * time.Hour,
		CrossSite:    true,
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/provider/callback?code=code-1&state=state-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Callback(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Result().Cookies()[0].SameSite; got != http.SameSiteNoneMode {
		t.Fatalf("expected SameSite=None for cross-site deployment, got %v", got)
	}
}

func TestFederationHandler_Callback_Error(t *testing.T) {
	e := newTestEcho()
	stub := &stubFederationService{
		callbackFn: func(ctx context.Context, code, state string) (string, *domain.User, error) {
			return "", nil, domain.ErrUpstream
		},
	}
	handler := NewFederationHandler(stub, FederationConfig{Mode: middleware.ModeBearer, PostLoginURL: "/"})

	req := httptest.NewRequest(http.MethodGet, "/auth/provider/callback?code=code-1&state=state-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Callback(c); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie may be set on failure")
	}
}
