package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

func validateConfig(cfg *Config) error {
	if cfg == nil || cfg.Endpoint == "" {
		return ErrEndpointRequired
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return ErrCredsRequired
	}
	return nil
}

// Connect verifies the server is reachable.
func (m *implMinIO) Connect(ctx context.Context) error {
	if err := m.HealthCheck(ctx); err != nil {
		return err
	}
	m.connected = true
	return nil
}

// HealthCheck lists buckets to verify connectivity and credentials.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}

// EnsureBucket creates the bucket if it does not exist.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("minio: check bucket %q: %w", bucketName, err)
	}
	if exists {
		return nil
	}
	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return fmt.Errorf("minio: create bucket %q: %w", bucketName, err)
	}
	return nil
}

// UploadJSON uploads a JSON document.
func (m *implMinIO) UploadJSON(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if len(req.Data) == 0 {
		return nil, ErrEmptyUpload
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName,
		bytes.NewReader(req.Data), int64(len(req.Data)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			UserMetadata: req.Metadata,
		})
	if err != nil {
		return nil, fmt.Errorf("minio: upload %q: %w", req.ObjectName, err)
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  contentType,
		LastModified: time.Now(),
	}, nil
}

// GetPresignedDownloadURL returns a presigned GET URL for an object.
func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}
	u, err := m.minioClient.PresignedGetObject(ctx, bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("minio: presign %q: %w", objectName, err)
	}
	return u.String(), nil
}

// DeleteFile removes an object.
func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: delete %q: %w", objectName, err)
	}
	return nil
}

// Close releases client resources.
func (m *implMinIO) Close() error {
	m.connected = false
	return nil
}
