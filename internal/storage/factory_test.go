package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlget/internal/config"
	"urlget/internal/storage/adapters/fs"
	"urlget/internal/storage/adapters/s3"
	"urlget/mocks"
)

func TestForDest(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Storage: config.StorageConfig{
			S3: config.S3Config{Region: "us-east-2"},
		},
	}

	t.Run("local path", func(t *testing.T) {
		store, err := ForDest(ctx, "/tmp/a.txt", cfg, mocks.NoopLogger{}, mocks.NoopMetrics{})
		require.NoError(t, err)
		assert.IsType(t, &fs.Store{}, store)
	})

	t.Run("s3 uri", func(t *testing.T) {
		store, err := ForDest(ctx, "s3://downloads/a.txt", cfg, mocks.NoopLogger{}, mocks.NoopMetrics{})
		require.NoError(t, err)
		assert.IsType(t, &s3.Store{}, store)
	})
}
