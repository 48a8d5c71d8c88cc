package http

import (
	"campaign-srv/internal/provisioning"
	pkgErrors "campaign-srv/pkg/errors"
)

var (
	errRunNotFound      = pkgErrors.NewHTTPError(20001, "Run not found")
	errInvalidMode      = pkgErrors.NewHTTPError(20002, "Invalid run mode")
	errCustomerRequired = pkgErrors.NewHTTPError(20003, "Customer ID is required")
	errAccountNotFound  = pkgErrors.NewHTTPError(20004, "Account not found")
	errAccountSuspended = pkgErrors.NewHTTPError(20005, "Account is suspended")
	errBudgetFailed     = pkgErrors.NewHTTPError(20006, "Budget creation failed")
	errCampaignFailed   = pkgErrors.NewHTTPError(20007, "Campaign creation failed")
	errAdGroupFailed    = pkgErrors.NewHTTPError(20008, "Ad group creation failed")
	errAdsFailed        = pkgErrors.NewHTTPError(20009, "Text ads creation failed")
	errKeywordsFailed   = pkgErrors.NewHTTPError(20010, "Keywords creation failed")
)

func (h handler) mapError(err error) error {
	switch err {
	case provisioning.ErrRunNotFound:
		return errRunNotFound
	case provisioning.ErrInvalidMode:
		return errInvalidMode
	case provisioning.ErrCustomerRequired:
		return errCustomerRequired
	case provisioning.ErrAccountNotFound:
		return errAccountNotFound
	case provisioning.ErrAccountSuspended:
		return errAccountSuspended
	case provisioning.ErrBudgetFailed:
		return errBudgetFailed
	case provisioning.ErrCampaignFailed:
		return errCampaignFailed
	case provisioning.ErrAdGroupFailed:
		return errAdGroupFailed
	case provisioning.ErrAdsFailed:
		return errAdsFailed
	case provisioning.ErrKeywordsFailed:
		return errKeywordsFailed
	default:
		return err
	}
}
