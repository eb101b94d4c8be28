// storage/factory.go
package storage

import (
	"context"
	"fmt"
)

const (
	ProviderLocal = "local"
	ProviderS3    = "s3"
)

// Config selects and configures a provider.
type Config struct {
	Provider string // "local" (default) or "s3"
	Dir      string
	S3       S3Config
}

// New creates the configured provider.
func New(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "", ProviderLocal:
		return NewLocalProvider(cfg.Dir)

	case ProviderS3:
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("S3 bucket is required when using S3 storage")
		}
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return NewS3Provider(client, cfg.S3.Bucket, cfg.S3.Prefix), nil

	default:
		return nil, fmt.Errorf("unsupported storage provider: %s (must be 'local' or 's3')", cfg.Provider)
	}
}
