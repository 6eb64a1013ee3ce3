package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Port:      "8080",
		JWTSecret: "secret",
		AuthMode:  "bearer",
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}
}

func TestValidate_BadAuthMode(t *testing.T) {
	cfg := validConfig()
	cfg.AuthMode = "header"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown auth mode")
	}
}

func TestValidate_FederationEnabledMissingSettings(t *testing.T) {
	cfg := validConfig()
	cfg.OAuth.Enabled = true
	cfg.OAuth.ClientID = "client"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error for incomplete federation settings")
	}
	if !strings.Contains(err.Error(), "OAUTH_CLIENT_SECRET") {
		t.Fatalf("expected missing field named, got %v", err)
	}
}

func TestValidate_FederationEnabledComplete(t *testing.T) {
	cfg := validConfig()
	cfg.OAuth = OAuthConfig{
		Enabled:      true,
		ClientID:     "client",
		ClientSecret: "secret",
		AuthURL:      "https://idp.example.com/authorize",
		TokenURL:     "https://idp.example.com/token",
		ProfileURL:   "https://idp.example.com/profile",
		RedirectURL:  "https://portal.example.com/auth/provider/callback",
		PostLoginURL: "/",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
