// Package storage selects the destination store implementation for a
// destination: s3://bucket/key destinations go to object storage, anything
// else is treated as a local path.
package storage

import (
	"context"

	"urlget/internal/config"
	"urlget/internal/domain"
	"urlget/internal/observability"
	"urlget/internal/storage/adapters/fs"
	"urlget/internal/storage/adapters/s3"
)

// ForDest creates the store that owns the given destination.
func ForDest(ctx context.Context, dest string, cfg *config.Config, logger observability.Logger, metrics observability.Metrics) (domain.FileStore, error) {
	if s3.IsURI(dest) {
		logger.Info("Using S3 destination store", "dest", dest, "region", cfg.Storage.S3.Region)
		return s3.New(ctx, &cfg.Storage, logger, metrics)
	}
	return fs.NewStore(logger, metrics), nil
}
