// Package fs implements the FileStore port on the local filesystem.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"urlget/internal/domain"
	"urlget/internal/observability"
)

// Store writes destinations as local files.
type Store struct {
	logger  observability.Logger
	metrics observability.Metrics
}

// NewStore creates a new filesystem-based destination store.
func NewStore(logger observability.Logger, metrics observability.Metrics) *Store {
	return &Store{
		logger:  logger.WithFields(map[string]interface{}{"component": "filesystem_store"}),
		metrics: metrics.WithTags(map[string]string{"store": "filesystem"}),
	}
}

// Stat reports destination metadata. A missing file is not an error.
func (s *Store) Stat(ctx context.Context, dest string) (domain.FileInfo, error) {
	fi, err := os.Stat(dest)
	if errors.Is(err, os.ErrNotExist) {
		return domain.FileInfo{}, nil
	}
	if err != nil {
		s.metrics.IncrementCounter("store.stat.errors", nil)
		return domain.FileInfo{}, fmt.Errorf("reading destination metadata: %w", err)
	}
	return domain.FileInfo{
		Exists:  true,
		ModTime: fi.ModTime().UTC(),
		Size:    fi.Size(),
	}, nil
}

// Put streams reader to dest, overwriting any existing file in place.
func (s *Store) Put(ctx context.Context, dest string, reader io.Reader) (int64, error) {
	start := time.Now()
	s.metrics.IncrementCounter("store.put.attempts", nil)

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			s.metrics.IncrementCounter("store.put.errors", map[string]string{"error": "mkdir"})
			return 0, fmt.Errorf("creating destination directory: %w", err)
		}
	}

	file, err := os.Create(dest)
	if err != nil {
		s.metrics.IncrementCounter("store.put.errors", map[string]string{"error": "create"})
		return 0, fmt.Errorf("opening %s for writing: %w", dest, err)
	}

	bytesWritten, err := io.Copy(file, reader)
	if err != nil {
		_ = file.Close()
		s.metrics.IncrementCounter("store.put.errors", map[string]string{"error": "write"})
		return bytesWritten, fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := file.Close(); err != nil {
		s.metrics.IncrementCounter("store.put.errors", map[string]string{"error": "close"})
		return bytesWritten, fmt.Errorf("closing %s: %w", dest, err)
	}

	s.logger.Info("Destination written",
		"dest", dest,
		"bytes", bytesWritten,
		"duration_ms", time.Since(start).Milliseconds())
	s.metrics.IncrementCounter("store.put.success", nil)
	s.metrics.RecordHistogram("store.put.bytes", float64(bytesWritten), nil)

	return bytesWritten, nil
}
