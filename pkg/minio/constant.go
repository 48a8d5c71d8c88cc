package minio

import (
	"errors"
	"time"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second

	// DefaultContentType is used when an upload does not set one.
	DefaultContentType = "application/json"

	// DefaultPresignExpiry is the default lifetime of presigned URLs.
	DefaultPresignExpiry = 24 * time.Hour
)

var (
	ErrEndpointRequired = errors.New("minio: endpoint is required")
	ErrCredsRequired    = errors.New("minio: access key and secret key are required")
	ErrEmptyUpload      = errors.New("minio: upload data is empty")
)
