package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stnicholas-trust/staff-portal/internal/api/handler"
	"github.com/stnicholas-trust/staff-portal/internal/api/middleware"
	"github.com/stnicholas-trust/staff-portal/internal/core/domain"
	"github.com/stnicholas-trust/staff-portal/internal/core/ports"
	"github.com/stnicholas-trust/staff-portal/internal/core/service"
	"github.com/stnicholas-trust/staff-portal/internal/infrastructure/config"
	redisstore "github.com/stnicholas-trust/staff-portal/internal/infrastructure/db/redis"
	"github.com/stnicholas-trust/staff-portal/internal/infrastructure/http/handlers"
	"github.com/stnicholas-trust/staff-portal/internal/infrastructure/provider"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the federated login flow is disabled.
func NewRouter(cfg *config.Config, users ports.UserRepository, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(users, tokens)
	staffService := service.NewStaffService(users)

	authHandler := handler.NewAuthHandler(authService, cfg.AuthMode)
	staffHandler := handler.NewStaffHandler(staffService)

	authMiddleware := middleware.Auth(tokens, cfg.AuthMode)
	managementOnly := middleware.RequireRole(domain.RoleManagement)

	// --- Credential auth ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me, authMiddleware)

	// --- Roster (management only) ---
	e.GET("/staff", staffHandler.List, authMiddleware, managementOnly)
	e.PUT("/staff/:id", staffHandler.UpdateRole, authMiddleware, managementOnly)

	// --- Federated login ---
	if cfg.OAuth.Enabled {
		states := redisstore.NewStateStore(rdb)
		providerClient := provider.NewClient(cfg.OAuth)
		federationService := service.NewFederationService(providerClient, states, users, tokens, log)
		federationHandler := handler.NewFederationHandler(federationService, handler.FederationConfig{
			Mode:         cfg.AuthMode,
			PostLoginURL: cfg.OAuth.PostLoginURL,
			SessionTTL:   cfg.SessionTTL,
			CrossSite:    cfg.OAuth.CrossSite,
		})

		e.GET("/auth/provider", federationHandler.Begin)
		e.GET("/auth/provider/callback", federationHandler.Callback)
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
