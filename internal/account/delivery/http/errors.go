package http

import (
	"campaign-srv/internal/account"
	pkgErrors "campaign-srv/pkg/errors"
)

var (
	errAccountNotFound    = pkgErrors.NewHTTPError(10001, "Account not found")
	errAccountExisted     = pkgErrors.NewHTTPError(10002, "Account already exists")
	errAccountSuspended   = pkgErrors.NewHTTPError(10003, "Account is suspended")
	errCustomerIDRequired = pkgErrors.NewHTTPError(10004, "Customer ID is required")
	errNameRequired       = pkgErrors.NewHTTPError(10005, "Name is required")
	errTokenRequired      = pkgErrors.NewHTTPError(10006, "Refresh token and developer token are required")
)

func (h handler) mapError(err error) error {
	switch err {
	case account.ErrAccountNotFound:
		return errAccountNotFound
	case account.ErrAccountExisted:
		return errAccountExisted
	case account.ErrAccountSuspended:
		return errAccountSuspended
	case account.ErrCustomerIDRequired:
		return errCustomerIDRequired
	case account.ErrNameRequired:
		return errNameRequired
	case account.ErrTokenRequired:
		return errTokenRequired
	default:
		return err
	}
}
