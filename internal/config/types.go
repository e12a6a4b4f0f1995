package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all ambient configuration for a task invocation. Per-request
// parameters (url, dest, credentials, proxy) arrive from the calling engine,
// not from here.
type Config struct {
	// Core settings
	Environment string
	ServiceName string
	LogLevel    string
	Version     string

	// Component configurations
	HTTP          HTTPConfig
	Storage       StorageConfig
	Observability ObservabilityConfig
}

// HTTPConfig holds HTTP client configuration.
type HTTPConfig struct {
	// Timeout bounds the whole request. Zero means no timeout; the calling
	// engine enforces external deadlines by killing the process.
	Timeout   time.Duration
	UserAgent string
}

// StorageConfig holds destination store configuration.
type StorageConfig struct {
	S3 S3Config
}

// S3Config holds credentials and endpoint for s3:// destinations.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // custom endpoint for MinIO/LocalStack
}

// ObservabilityConfig selects logging and metrics adapters.
type ObservabilityConfig struct {
	LogProvider     string // "console"
	LogJSON         bool
	MetricsProvider string // "console" or "prometheus"
	PushgatewayURL  string // optional; metrics are pushed after the run
}

// Validate validates the entire configuration.
func (c *Config) Validate() error {
	var errs []string

	if c.ServiceName == "" {
		errs = append(errs, "SERVICE_NAME is required")
	}
	if c.HTTP.Timeout < 0 {
		errs = append(errs, "HTTP_TIMEOUT cannot be negative")
	}
	switch c.Observability.MetricsProvider {
	case "console", "prometheus":
	default:
		errs = append(errs, fmt.Sprintf("unsupported metrics provider: %s", c.Observability.MetricsProvider))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// IsLocal returns true if running in a local/development environment.
func (c *Config) IsLocal() bool {
	env := strings.ToLower(c.Environment)
	return env == "local" || env == "development" || env == "dev"
}

// IsProduction returns true if running in a production environment.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "production" || env == "prod"
}
