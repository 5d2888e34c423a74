package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the access service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9500"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL      string `env:"DATABASE_URL" required:"true"`
	DatabaseHost     string `env:"DB_HOST" default:"access-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"access_db"`
	DatabaseUser     string `env:"DB_USER" default:"access_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Identity
	ClientCertHeader string `env:"CLIENT_CERT_HEADER" default:"X-Client-Cert"`

	// Resolution cache
	ResolutionCacheTTL  time.Duration `env:"RESOLUTION_CACHE_TTL" default:"5m"`
	ResolutionCacheSize int           `env:"RESOLUTION_CACHE_SIZE" default:"4096"`

	// Sessions
	SessionTTL           time.Duration `env:"SESSION_TTL" default:"8h"`
	BlacklistTTL         time.Duration `env:"BLACKLIST_TTL" default:"8h"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" default:"1m"`

	// Features
	EnableAuditLog bool `env:"ENABLE_AUDIT_LOG" default:"true"`
	EnableMetrics  bool `env:"ENABLE_METRICS" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9500")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	config.DatabaseHost = getEnvOrDefault("DB_HOST", "access-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "access_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "access_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Identity configuration
	config.ClientCertHeader = getEnvOrDefault("CLIENT_CERT_HEADER", "X-Client-Cert")

	// Resolution cache configuration
	var err error
	config.ResolutionCacheTTL, err = getDurationEnv("RESOLUTION_CACHE_TTL", "5m")
	if err != nil {
		return nil, err
	}

	cacheSizeStr := getEnvOrDefault("RESOLUTION_CACHE_SIZE", "4096")
	cacheSize, err := strconv.Atoi(cacheSizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RESOLUTION_CACHE_SIZE: %w", err)
	}
	config.ResolutionCacheSize = cacheSize

	// Session configuration
	config.SessionTTL, err = getDurationEnv("SESSION_TTL", "8h")
	if err != nil {
		return nil, err
	}
	config.BlacklistTTL, err = getDurationEnv("BLACKLIST_TTL", "8h")
	if err != nil {
		return nil, err
	}
	config.SessionSweepInterval, err = getDurationEnv("SESSION_SWEEP_INTERVAL", "1m")
	if err != nil {
		return nil, err
	}

	// Feature flags
	config.EnableAuditLog = getBoolEnv("ENABLE_AUDIT_LOG", true)
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.ClientCertHeader == "" {
		return fmt.Errorf("client certificate header must not be empty")
	}

	if c.ResolutionCacheTTL < time.Minute {
		return fmt.Errorf("resolution cache TTL must be at least 1 minute, got: %v", c.ResolutionCacheTTL)
	}
	if c.ResolutionCacheSize < 1 {
		return fmt.Errorf("resolution cache size must be at least 1, got: %d", c.ResolutionCacheSize)
	}

	if c.SessionTTL < time.Minute {
		return fmt.Errorf("session TTL must be at least 1 minute, got: %v", c.SessionTTL)
	}
	if c.BlacklistTTL < c.SessionTTL {
		return fmt.Errorf("blacklist TTL must not be shorter than session TTL, got: %v < %v", c.BlacklistTTL, c.SessionTTL)
	}
	if c.SessionSweepInterval < time.Second {
		return fmt.Errorf("session sweep interval must be at least 1 second, got: %v", c.SessionSweepInterval)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key, defaultValue string) (time.Duration, error) {
	value := getEnvOrDefault(key, defaultValue)
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
