package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"urlget/internal/config"
	"urlget/internal/domain"
	obadapters "urlget/internal/observability/adapters"
	"urlget/internal/observability/adapters/prom"
	"urlget/internal/worker"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgProvider := config.GetProvider()
	cfgProvider.MustLoad()
	cfg := cfgProvider.MustGet()

	logger, metrics, err := obadapters.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize observability: %v", err)
	}

	params, err := worker.ReadParams(os.Args[1:], os.Stdin)
	if err != nil {
		taskErr := domain.NewTaskError(domain.KindConfiguration, "reading parameters", err)
		logger.Error("Invalid invocation", "error", taskErr)
		emit(worker.Response{Failed: true, Msg: taskErr.Error()})
		return 1
	}

	task := worker.New(cfg, logger, metrics)
	resp, code := task.Run(context.Background(), params)

	// One-shot processes cannot be scraped; hand the samples to a
	// Pushgateway when one is configured.
	if pm, ok := metrics.(*prom.Metrics); ok && cfg.Observability.PushgatewayURL != "" {
		if err := pm.Push(cfg.Observability.PushgatewayURL, cfg.ServiceName); err != nil {
			logger.Error("Failed to push metrics", "error", err)
		}
	}

	emit(resp)
	return code
}

// emit writes the result object to stdout, the only thing the calling
// engine reads there.
func emit(resp worker.Response) {
	out, err := json.Marshal(resp)
	if err != nil {
		log.Fatalf("Failed to marshal result: %v", err)
	}
	fmt.Println(string(out))
}
