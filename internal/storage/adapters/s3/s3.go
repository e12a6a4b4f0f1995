// Package s3 implements the FileStore port for s3://bucket/key destinations.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"urlget/internal/config"
	"urlget/internal/domain"
	"urlget/internal/observability"
)

const uriScheme = "s3://"

// Store writes destinations as S3 objects. The object's LastModified stands
// in for the local file's modification time during change detection.
type Store struct {
	client  *s3.Client
	logger  observability.Logger
	metrics observability.Metrics
}

// New creates a new S3 destination store.
func New(ctx context.Context, cfg *config.StorageConfig, logger observability.Logger, metrics observability.Metrics) (*Store, error) {
	awsCfg, err := buildAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("building AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
	})

	return &Store{
		client:  client,
		logger:  logger.WithFields(map[string]interface{}{"component": "s3_store"}),
		metrics: metrics.WithTags(map[string]string{"store": "s3"}),
	}, nil
}

// IsURI reports whether dest addresses an S3 object.
func IsURI(dest string) bool {
	return strings.HasPrefix(dest, uriScheme)
}

// ParseURI splits an s3://bucket/key destination.
func ParseURI(dest string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(dest, uriScheme)
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid s3 destination %q, expected s3://bucket/key", dest)
	}
	return parts[0], parts[1], nil
}

// Stat reports object metadata. A missing object is not an error.
func (s *Store) Stat(ctx context.Context, dest string) (domain.FileInfo, error) {
	bucket, key, err := ParseURI(dest)
	if err != nil {
		return domain.FileInfo{}, err
	}

	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return domain.FileInfo{}, nil
		}
		s.metrics.IncrementCounter("store.stat.errors", nil)
		return domain.FileInfo{}, fmt.Errorf("reading object metadata: %w", err)
	}

	info := domain.FileInfo{Exists: true}
	if out.LastModified != nil {
		info.ModTime = out.LastModified.UTC()
	}
	if out.ContentLength != nil {
		info.Size = *out.ContentLength
	}
	return info, nil
}

// Put uploads reader to the destination object, overwriting in place.
func (s *Store) Put(ctx context.Context, dest string, reader io.Reader) (int64, error) {
	start := time.Now()
	s.metrics.IncrementCounter("store.put.attempts", nil)

	bucket, key, err := ParseURI(dest)
	if err != nil {
		return 0, err
	}

	// PutObject needs a seekable body for signing, so buffer the stream.
	buf := &bytes.Buffer{}
	bytesRead, err := io.Copy(buf, reader)
	if err != nil {
		s.metrics.IncrementCounter("store.put.errors", map[string]string{"error": "read"})
		return bytesRead, fmt.Errorf("reading content: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	if err != nil {
		s.metrics.IncrementCounter("store.put.errors", map[string]string{"error": "put"})
		return bytesRead, fmt.Errorf("putting object: %w", err)
	}

	s.logger.Info("Object written",
		"bucket", bucket,
		"key", key,
		"bytes", bytesRead,
		"duration_ms", time.Since(start).Milliseconds())
	s.metrics.IncrementCounter("store.put.success", nil)
	s.metrics.RecordHistogram("store.put.bytes", float64(bytesRead), nil)

	return bytesRead, nil
}

func buildAWSConfig(ctx context.Context, cfg *config.StorageConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKeyID != "" && cfg.S3.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
