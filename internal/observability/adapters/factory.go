// Package adapters wires concrete observability implementations to the
// Logger and Metrics ports based on configuration.
package adapters

import (
	"fmt"

	"urlget/internal/config"
	"urlget/internal/observability"
	"urlget/internal/observability/adapters/console"
	"urlget/internal/observability/adapters/prom"
)

// Build creates the Logger and Metrics for this invocation.
func Build(cfg *config.Config) (observability.Logger, observability.Metrics, error) {
	logger := console.NewLogger(cfg.Observability.LogJSON)

	switch cfg.Observability.MetricsProvider {
	case "console":
		return logger, console.NewMetrics(), nil
	case "prometheus":
		return logger, prom.New(cfg.ServiceName), nil
	default:
		return nil, nil, fmt.Errorf("unsupported metrics provider: %s", cfg.Observability.MetricsProvider)
	}
}
