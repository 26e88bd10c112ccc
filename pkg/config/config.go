// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skinpoint/cms/pkg/observability"
	"github.com/skinpoint/cms/pkg/storage"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Storage       storage.Config
	Auth          AuthConfig
	Revalidate    RevalidateConfig
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// AuthConfig holds identity-provider settings for token verification
type AuthConfig struct {
	OIDCIssuerURL string
	OIDCClientID  string
}

// RevalidateConfig holds the best-effort page regeneration settings.
// An empty Endpoint disables the trigger.
type RevalidateConfig struct {
	Endpoint string
	Paths    []string
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel       observability.LogLevel
	MetricsEnabled bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server:        loadServerConfig(),
		Storage:       loadStorageConfig(),
		Auth:          loadAuthConfig(),
		Revalidate:    loadRevalidateConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Host:            getEnv("CMS_HOST", "0.0.0.0"),
		Port:            getEnv("CMS_PORT", "8080"),
		ReadTimeout:     getEnvDuration("CMS_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("CMS_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     getEnvDuration("CMS_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("CMS_SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func loadStorageConfig() storage.Config {
	cfg := storage.DefaultConfig()

	if mongoURI := getEnv("CMS_MONGO_URI", ""); mongoURI != "" {
		cfg.MongoURI = mongoURI
	}
	if mongoDB := getEnv("CMS_MONGO_DB", ""); mongoDB != "" {
		cfg.MongoDB = mongoDB
	}
	if timeout := getEnvDuration("CMS_MONGO_TIMEOUT", 0); timeout > 0 {
		cfg.MongoTimeout = timeout
	}

	if s3Endpoint := getEnv("CMS_S3_ENDPOINT", ""); s3Endpoint != "" {
		cfg.S3Endpoint = s3Endpoint
	}
	if s3Region := getEnv("CMS_S3_REGION", ""); s3Region != "" {
		cfg.S3Region = s3Region
	}
	cfg.S3Bucket = getEnv("CMS_S3_BUCKET", "")
	cfg.S3AccessKey = getEnv("CMS_S3_ACCESS_KEY", "")
	cfg.S3SecretKey = getEnv("CMS_S3_SECRET_KEY", "")
	if usePathStyle := getEnv("CMS_S3_USE_PATH_STYLE", ""); usePathStyle != "" {
		cfg.S3UsePathStyle = strings.ToLower(usePathStyle) == "true"
	}
	cfg.S3PublicBaseURL = getEnv("CMS_S3_PUBLIC_BASE_URL", "")

	return cfg
}

func loadAuthConfig() AuthConfig {
	return AuthConfig{
		OIDCIssuerURL: getEnv("CMS_OIDC_ISSUER_URL", ""),
		OIDCClientID:  getEnv("CMS_OIDC_CLIENT_ID", ""),
	}
}

func loadRevalidateConfig() RevalidateConfig {
	cfg := RevalidateConfig{
		Endpoint: getEnv("CMS_REVALIDATE_ENDPOINT", ""),
	}
	if paths := getEnv("CMS_REVALIDATE_PATHS", ""); paths != "" {
		for _, p := range strings.Split(paths, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Paths = append(cfg.Paths, p)
			}
		}
	}
	return cfg
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:       parseLogLevel(getEnv("CMS_LOG_LEVEL", "info")),
		MetricsEnabled: getEnvBool("CMS_METRICS_ENABLED", true),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Storage.MongoURI == "" {
		return fmt.Errorf("mongo URI is required")
	}
	if c.Storage.MongoDB == "" {
		return fmt.Errorf("mongo database name is required")
	}
	if c.Storage.S3Bucket == "" {
		return fmt.Errorf("S3 bucket is required")
	}
	if c.Auth.OIDCIssuerURL == "" {
		return fmt.Errorf("OIDC issuer URL is required")
	}
	if c.Auth.OIDCClientID == "" {
		return fmt.Errorf("OIDC client ID is required")
	}
	return nil
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) observability.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return observability.DebugLevel
	case "info":
		return observability.InfoLevel
	case "warn", "warning":
		return observability.WarnLevel
	case "error":
		return observability.ErrorLevel
	default:
		return observability.InfoLevel
	}
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
