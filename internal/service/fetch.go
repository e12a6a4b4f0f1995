// Package service contains the conditional-download use case.
package service

import (
	"context"
	"net/http"
	"time"

	"urlget/internal/domain"
	"urlget/internal/observability"
)

// FetchService decides whether a download is needed and performs it.
//
// Decision paths:
//   - force set, or destination absent: unconditional download.
//   - otherwise a HEAD request retrieves the remote Last-Modified header;
//     a remote timestamp strictly earlier than the destination's means the
//     destination is current and no download happens. Same, newer, or an
//     absent header means download. A failed HEAD or a malformed date is
//     fatal, never "assume download needed".
type FetchService struct {
	client  domain.HTTPClient
	store   domain.FileStore
	logger  observability.Logger
	metrics observability.Metrics
}

// NewFetchService creates a new fetch service.
func NewFetchService(
	client domain.HTTPClient,
	store domain.FileStore,
	logger observability.Logger,
	metrics observability.Metrics,
) *FetchService {
	return &FetchService{
		client:  client,
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// Execute runs one conditional download. The returned error, when non-nil,
// is always a *domain.TaskError and terminal for the invocation.
func (s *FetchService) Execute(ctx context.Context, req domain.FetchRequest) (*domain.FetchResult, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordHistogram("fetch.duration_seconds", time.Since(start).Seconds(), nil)
	}()

	if err := req.Validate(); err != nil {
		s.metrics.IncrementCounter("fetch.errors", map[string]string{"kind": "configuration"})
		return nil, err
	}

	s.logger.Info("Starting fetch", "url", req.URL, "dest", req.Dest, "force", req.Force)
	s.metrics.IncrementCounter("fetch.attempts", nil)

	result := &domain.FetchResult{URL: req.URL, Dest: req.Dest}

	needed, err := s.downloadNeeded(ctx, req)
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}

	if !needed {
		s.logger.Info("Destination is current, skipping download", "url", req.URL, "dest", req.Dest)
		s.metrics.IncrementCounter("fetch.unchanged", nil)
		result.Changed = false
		return result, nil
	}

	if err := s.download(ctx, req); err != nil {
		s.recordFailure(err)
		return nil, err
	}

	s.metrics.IncrementCounter("fetch.changed", nil)
	result.Changed = true
	return result, nil
}

// downloadNeeded implements the change-detection state machine.
func (s *FetchService) downloadNeeded(ctx context.Context, req domain.FetchRequest) (bool, error) {
	if req.Force {
		return true, nil
	}

	info, err := s.store.Stat(ctx, req.Dest)
	if err != nil {
		return false, domain.NewTaskError(domain.KindFilesystem, "reading destination metadata", err)
	}
	if !info.Exists {
		return true, nil
	}

	headers, err := s.client.Head(ctx, req.URL)
	if err != nil {
		return false, domain.NewTaskError(domain.KindNetwork, "querying remote resource", err)
	}

	lastModified := headers["Last-Modified"]
	if lastModified == "" {
		// No remote timestamp to compare against; the comparison is
		// ambiguous and the resource is downloaded.
		return true, nil
	}

	remote, err := http.ParseTime(lastModified)
	if err != nil {
		return false, domain.NewTaskError(domain.KindNetwork, "parsing Last-Modified header", err)
	}

	if remote.UTC().Before(info.ModTime.UTC()) {
		return false, nil
	}
	return true, nil
}

// download streams the resource to the destination, overwriting in place.
func (s *FetchService) download(ctx context.Context, req domain.FetchRequest) error {
	body, _, err := s.client.Get(ctx, req.URL)
	if err != nil {
		return domain.NewTaskError(domain.KindNetwork, "downloading remote resource", err)
	}
	defer body.Close()

	bytesWritten, err := s.store.Put(ctx, req.Dest, body)
	if err != nil {
		return domain.NewTaskError(domain.KindFilesystem, "writing destination", err)
	}

	s.logger.Info("Download completed", "url", req.URL, "dest", req.Dest, "bytes", bytesWritten)
	s.metrics.RecordHistogram("fetch.bytes", float64(bytesWritten), nil)
	return nil
}

func (s *FetchService) recordFailure(err error) {
	kind := string(domain.KindOf(err))
	s.logger.Error("Fetch failed", "error", err, "kind", kind)
	s.metrics.IncrementCounter("fetch.errors", map[string]string{"kind": kind})
}
