package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=2h"`
	AuthMode   string        `env:"AUTH_MODE,   default=bearer"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	OAuth OAuthConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=staff_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// OAuthConfig configures the federated identity provider. All fields are
// required when the provider is enabled; startup fails otherwise.
type OAuthConfig struct {
	Enabled      bool     `env:"OAUTH_ENABLED,        default=false"`
	ClientID     string   `env:"OAUTH_CLIENT_ID"`
	ClientSecret string   `env:"OAUTH_CLIENT_SECRET"`
	AuthURL      string   `env:"OAUTH_AUTH_URL"`
	TokenURL     string   `env:"OAUTH_TOKEN_URL"`
	ProfileURL   string   `env:"OAUTH_PROFILE_URL"`
	RedirectURL  string   `env:"OAUTH_REDIRECT_URL"`
	Scopes       []string `env:"OAUTH_SCOPES,         default=profile"`
	PostLoginURL string   `env:"OAUTH_POST_LOGIN_URL, default=/"`
	// CrossSite marks deployments where the frontend origin differs from this
	// API, widening the session cookie to SameSite=None.
	CrossSite bool `env:"OAUTH_CROSS_SITE, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(log zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	return &cfg
}

// Validate checks the settings required for the enabled auth methods.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.AuthMode != "bearer" && c.AuthMode != "cookie" {
		return fmt.Errorf("AUTH_MODE must be bearer or cookie, got %q", c.AuthMode)
	}
	if c.OAuth.Enabled {
		missing := []string{}
		for name, v := range map[string]string{
			"OAUTH_CLIENT_ID":     c.OAuth.ClientID,
			"OAUTH_CLIENT_SECRET": c.OAuth.ClientSecret,
			"OAUTH_AUTH_URL":      c.OAuth.AuthURL,
			"OAUTH_TOKEN_URL":     c.OAuth.TokenURL,
			"OAUTH_PROFILE_URL":   c.OAuth.ProfileURL,
			"OAUTH_REDIRECT_URL":  c.OAuth.RedirectURL,
		} {
			if v == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("federated login enabled but missing: %v", missing)
		}
	}
	return nil
}
