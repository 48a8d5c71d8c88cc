package minio

import (
	"context"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO defines object storage operations used by the service.
// Implementations are safe for concurrent use.
type MinIO interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	EnsureBucket(ctx context.Context, bucketName string) error
	UploadJSON(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	GetPresignedDownloadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
	DeleteFile(ctx context.Context, bucketName, objectName string) error
	Close() error
}

// NewMinIO creates a new MinIO client. Returns the interface.
func NewMinIO(cfg *Config) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}
