// Package worker adapts the fetch use case to the automation engine's
// invocation contract: a structured parameter object in, a structured JSON
// result out, and a non-zero exit code on failure.
package worker

import (
	"context"

	"github.com/google/uuid"

	"urlget/internal/adapters/httpclient"
	"urlget/internal/config"
	"urlget/internal/domain"
	"urlget/internal/observability"
	"urlget/internal/service"
	"urlget/internal/storage"
)

// Response is the structured result reported to the engine on stdout.
// On success it carries changed/url/dest; on failure, failed and msg.
type Response struct {
	Changed bool   `json:"changed"`
	URL     string `json:"url,omitempty"`
	Dest    string `json:"dest,omitempty"`
	Failed  bool   `json:"failed,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

// Task runs one get-url invocation.
type Task struct {
	cfg     *config.Config
	logger  observability.Logger
	metrics observability.Metrics
}

// New creates a new task runner.
func New(cfg *config.Config, logger observability.Logger, metrics observability.Metrics) *Task {
	return &Task{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// Run executes the task and returns the result envelope plus the process
// exit code for the engine.
func (t *Task) Run(ctx context.Context, params domain.Params) (Response, int) {
	invocationID := uuid.New().String()
	logger := t.logger.WithFields(map[string]interface{}{"invocation_id": invocationID})

	req := domain.NewFetchRequest(params)

	// Required parameters are checked before any collaborator is built,
	// so a configuration error never touches the network or filesystem.
	if err := req.Validate(); err != nil {
		logger.Error("Invalid parameters", "error", err)
		t.metrics.IncrementCounter("task.errors", map[string]string{"kind": string(domain.KindOf(err))})
		return failure(req, err), 1
	}

	client, err := httpclient.New(httpclient.Options{
		SkipCertificateValidation: req.SkipCertificateValidation,
		Username:                  req.Username,
		Password:                  req.Password,
		ProxyURL:                  req.ProxyURL,
		ProxyUsername:             req.ProxyUsername,
		ProxyPassword:             req.ProxyPassword,
	}, t.cfg.HTTP)
	if err != nil {
		taskErr := domain.NewTaskError(domain.KindConfiguration, "building HTTP client", err)
		logger.Error("Invalid parameters", "error", taskErr)
		t.metrics.IncrementCounter("task.errors", map[string]string{"kind": string(domain.KindConfiguration)})
		return failure(req, taskErr), 1
	}

	store, err := storage.ForDest(ctx, req.Dest, t.cfg, logger, t.metrics)
	if err != nil {
		taskErr := domain.NewTaskError(domain.KindConfiguration, "building destination store", err)
		logger.Error("Invalid parameters", "error", taskErr)
		t.metrics.IncrementCounter("task.errors", map[string]string{"kind": string(domain.KindConfiguration)})
		return failure(req, taskErr), 1
	}

	svc := service.NewFetchService(client, store, logger, t.metrics)
	result, err := svc.Execute(ctx, req)
	if err != nil {
		return failure(req, err), 1
	}

	return Response{
		Changed: result.Changed,
		URL:     result.URL,
		Dest:    result.Dest,
	}, 0
}

func failure(req domain.FetchRequest, err error) Response {
	return Response{
		Failed: true,
		Msg:    err.Error(),
		URL:    req.URL,
		Dest:   req.Dest,
	}
}
