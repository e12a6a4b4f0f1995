package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Provider manages configuration lifecycle and ensures singleton behavior.
type Provider struct {
	config *Config
	mu     sync.RWMutex
	loaded bool
}

var (
	instance *Provider
	once     sync.Once
)

// GetProvider returns the singleton configuration provider instance.
func GetProvider() *Provider {
	once.Do(func() {
		instance = &Provider{}
	})
	return instance
}

// Load loads configuration from environment variables and .env files.
// This should be called once at process startup.
func (p *Provider) Load() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return nil
	}

	if err := p.loadEnvFiles(); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}

	cfg := parse()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	p.config = cfg
	p.loaded = true
	return nil
}

// MustLoad loads configuration and panics on error.
// Use this for process initialization where errors are fatal.
func (p *Provider) MustLoad() {
	if err := p.Load(); err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
}

// Get returns the current configuration.
// Returns an error if configuration hasn't been loaded.
func (p *Provider) Get() (*Config, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.loaded || p.config == nil {
		return nil, fmt.Errorf("configuration not loaded; call Load() first")
	}
	return p.config, nil
}

// MustGet returns the configuration or panics if not loaded.
func (p *Provider) MustGet() *Config {
	cfg, err := p.Get()
	if err != nil {
		panic(fmt.Sprintf("failed to get configuration: %v", err))
	}
	return cfg
}

// IsLoaded returns whether configuration has been loaded.
func (p *Provider) IsLoaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

// Reset clears the configuration (useful for testing).
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config = nil
	p.loaded = false
}

// loadEnvFiles loads .env files in order of precedence.
func (p *Provider) loadEnvFiles() error {
	// Base .env file (optional)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	// Environment-specific file (optional)
	env := os.Getenv("ENVIRONMENT")
	if env != "" {
		envFile := fmt.Sprintf(".env.%s", env)
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Overload(envFile); err != nil {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	// .env.local for local overrides (highest precedence, optional)
	if _, err := os.Stat(".env.local"); err == nil {
		if err := godotenv.Overload(".env.local"); err != nil {
			return fmt.Errorf("failed to load .env.local: %w", err)
		}
	}

	return nil
}

// parse reads configuration from environment variables.
func parse() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "local"),
		ServiceName: getEnv("SERVICE_NAME", "urlget"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Version:     getEnv("SERVICE_VERSION", "1.0.0"),

		HTTP: HTTPConfig{
			Timeout:   getDuration("HTTP_TIMEOUT", "0s"),
			UserAgent: getEnv("HTTP_USER_AGENT", "urlget/1.0"),
		},

		Storage: StorageConfig{
			S3: S3Config{
				Region:          getEnv("AWS_REGION", "us-east-2"),
				AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
				Endpoint:        getEnv("S3_ENDPOINT", ""),
			},
		},

		Observability: ObservabilityConfig{
			LogProvider:     getEnv("OBSERVABILITY_LOG_PROVIDER", "console"),
			LogJSON:         getBool("OBSERVABILITY_LOG_JSON", false),
			MetricsProvider: getEnv("OBSERVABILITY_METRICS_PROVIDER", "console"),
			PushgatewayURL:  getEnv("OBSERVABILITY_PUSHGATEWAY_URL", ""),
		},
	}
}
