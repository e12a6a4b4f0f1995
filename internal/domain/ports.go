package domain

import (
	"context"
	"io"
	"time"
)

// HTTPClient defines the interface for remote resource access.
type HTTPClient interface {
	// Head retrieves the response headers for a URL without a body.
	Head(ctx context.Context, url string) (map[string]string, error)

	// Get retrieves a URL for streaming.
	// Returns: body, response headers, error. The caller owns the body.
	Get(ctx context.Context, url string) (io.ReadCloser, map[string]string, error)
}

// FileInfo describes the destination object, when it exists.
type FileInfo struct {
	Exists  bool
	ModTime time.Time
	Size    int64
}

// FileStore defines the interface for destination access. Implementations
// exist for local paths and s3:// URIs.
type FileStore interface {
	// Stat reports destination metadata. A missing destination is not an
	// error; it is reported with Exists set to false.
	Stat(ctx context.Context, dest string) (FileInfo, error)

	// Put streams reader to the destination, overwriting in place.
	// Returns the number of bytes written.
	Put(ctx context.Context, dest string, reader io.Reader) (int64, error)
}
