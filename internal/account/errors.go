package account

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExisted     = errors.New("account already exists")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrCustomerIDRequired = errors.New("customer id is required")
	ErrNameRequired       = errors.New("name is required")
	ErrTokenRequired      = errors.New("refresh token and developer token are required")
)
