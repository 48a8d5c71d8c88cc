package repository

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrFailedToInsert  = errors.New("failed to insert")
	ErrFailedToGet     = errors.New("failed to get")
	ErrFailedToList    = errors.New("failed to list")
	ErrFailedToUpdate  = errors.New("failed to update")
)
