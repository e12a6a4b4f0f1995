package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Load(t *testing.T) {
	provider := GetProvider()

	t.Run("defaults", func(t *testing.T) {
		provider.Reset()

		require.NoError(t, provider.Load())
		cfg, err := provider.Get()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Environment)
		assert.Equal(t, "urlget", cfg.ServiceName)
		assert.Equal(t, time.Duration(0), cfg.HTTP.Timeout)
		assert.Equal(t, "urlget/1.0", cfg.HTTP.UserAgent)
		assert.Equal(t, "console", cfg.Observability.MetricsProvider)
		assert.True(t, cfg.IsLocal())
		assert.False(t, cfg.IsProduction())
	})

	t.Run("environment overrides", func(t *testing.T) {
		provider.Reset()
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("HTTP_TIMEOUT", "30s")
		t.Setenv("HTTP_USER_AGENT", "custom-agent/2.0")
		t.Setenv("OBSERVABILITY_METRICS_PROVIDER", "prometheus")
		t.Setenv("OBSERVABILITY_PUSHGATEWAY_URL", "http://pushgateway:9091")

		require.NoError(t, provider.Load())
		cfg := provider.MustGet()

		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
		assert.Equal(t, "custom-agent/2.0", cfg.HTTP.UserAgent)
		assert.Equal(t, "prometheus", cfg.Observability.MetricsProvider)
		assert.Equal(t, "http://pushgateway:9091", cfg.Observability.PushgatewayURL)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("invalid metrics provider fails validation", func(t *testing.T) {
		provider.Reset()
		t.Setenv("OBSERVABILITY_METRICS_PROVIDER", "statsd")

		err := provider.Load()
		assert.ErrorContains(t, err, "unsupported metrics provider")
	})

	t.Run("load is idempotent", func(t *testing.T) {
		provider.Reset()

		require.NoError(t, provider.Load())
		first := provider.MustGet()
		require.NoError(t, provider.Load())
		assert.Same(t, first, provider.MustGet())
	})
}

func TestProvider_Get(t *testing.T) {
	provider := GetProvider()
	provider.Reset()

	_, err := provider.Get()
	assert.ErrorContains(t, err, "configuration not loaded")
	assert.False(t, provider.IsLoaded())

	require.NoError(t, provider.Load())
	assert.True(t, provider.IsLoaded())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServiceName: "urlget",
			Observability: ObservabilityConfig{
				MetricsProvider: "console",
			},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing service name", func(t *testing.T) {
		cfg := valid()
		cfg.ServiceName = ""
		assert.ErrorContains(t, cfg.Validate(), "SERVICE_NAME is required")
	})

	t.Run("negative timeout", func(t *testing.T) {
		cfg := valid()
		cfg.HTTP.Timeout = -time.Second
		assert.ErrorContains(t, cfg.Validate(), "HTTP_TIMEOUT cannot be negative")
	})
}
