package repository

import "errors"

var (
	ErrRunNotFound    = errors.New("run not found")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToList   = errors.New("failed to list")
	ErrFailedToUpdate = errors.New("failed to update")
	ErrCacheMiss      = errors.New("cache miss")
)
