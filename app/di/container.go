package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"access-service/app/cache"
	"access-service/app/config"
	"access-service/app/driver/postgres"
	"access-service/app/metrics"
	"access-service/app/port"
	"access-service/app/rest"
	"access-service/app/session"
	"access-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *postgres.DB

	// State
	ResolutionCache *cache.ResolutionCache
	SessionRegistry *session.Registry

	// Repositories
	UserResolver      port.UserResolver
	ProgramRepository port.ProgramRepository

	// Usecases
	AccessUsecase port.AccessUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize database connection
	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	container.UserResolver = postgres.NewUserRepository(container.DB.Pool(), logger)
	container.ProgramRepository = postgres.NewProgramRepository(container.DB.Pool(), logger)

	// Initialize in-process state
	container.ResolutionCache = cache.NewResolutionCache(cfg.ResolutionCacheTTL, cfg.ResolutionCacheSize, logger)
	container.SessionRegistry = session.NewRegistry(cfg.SessionTTL, cfg.BlacklistTTL, cfg.SessionSweepInterval, logger)

	// Initialize usecases
	container.AccessUsecase = usecase.NewAccessUsecase(
		container.UserResolver,
		container.ResolutionCache,
		container.SessionRegistry,
		logger,
	)

	if cfg.EnableMetrics {
		metrics.Register()
	}

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:            c.Logger,
		AccessUsecase:     c.AccessUsecase,
		ProgramRepository: c.ProgramRepository,
		HealthChecker:     c.DB,
		CertHeader:        c.Config.ClientCertHeader,
		EnableDebug:       c.Config.LogLevel == "debug",
		EnableMetrics:     c.Config.EnableMetrics,
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.SessionRegistry != nil {
		c.SessionRegistry.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
