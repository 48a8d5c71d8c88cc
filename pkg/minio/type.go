package minio

import (
	"time"

	"github.com/minio/minio-go/v7"
)

// Config holds MinIO connection configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// UploadRequest describes a JSON object upload.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Data        []byte
	ContentType string
	Metadata    map[string]string
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName   string    `json:"bucket_name"`
	ObjectName   string    `json:"object_name"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag"`
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
}

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      *Config
	connected   bool
}
