package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"access-service/app/domain"
	"access-service/app/metrics"
	"access-service/app/port"
	"access-service/app/rest/handlers"
	custommw "access-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger            *slog.Logger
	AccessUsecase     port.AccessUsecase
	ProgramRepository port.ProgramRepository
	HealthChecker     handlers.HealthChecker
	CertHeader        string
	EnableDebug       bool
	EnableMetrics     bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AccessUsecase, config.Logger)
	programHandler := handlers.NewProgramHandler(config.ProgramRepository, config.Logger)
	adminHandler := handlers.NewAdminHandler(config.AccessUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecker, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.AccessUsecase, config.CertHeader, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	health := v1.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Identity endpoints
	auth := v1.Group("/auth")
	auth.Use(authMiddleware.RequireAuth())
	auth.GET("/whoami", authHandler.Whoami)
	auth.POST("/logout", authHandler.Logout)

	// Program endpoints
	programs := v1.Group("/programs")
	programs.Use(authMiddleware.RequireAuth())
	programs.GET("", programHandler.ListPrograms)
	programs.GET("/:programId/summary", programHandler.GetProgramSummary,
		authMiddleware.RequireProgramAccess(domain.AccessLevelRead))

	// Admin endpoints
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireAuth())
	admin.Use(authMiddleware.RequireSystemAdmin())
	admin.GET("/sessions", adminHandler.ListSessions)
	admin.POST("/sessions/force-logout", adminHandler.ForceLogout)
	admin.POST("/cache/invalidate", adminHandler.InvalidateCache)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	return e
}
