package provisioning

import "errors"

var (
	ErrRunNotFound        = errors.New("provisioning: run not found")
	ErrInvalidMode        = errors.New("provisioning: invalid run mode")
	ErrCustomerRequired   = errors.New("provisioning: customer id is required")
	ErrAccountNotFound    = errors.New("provisioning: account not found")
	ErrAccountSuspended   = errors.New("provisioning: account is suspended")
	ErrBudgetFailed       = errors.New("provisioning: budget creation failed")
	ErrCampaignFailed     = errors.New("provisioning: campaign creation failed")
	ErrAdGroupFailed      = errors.New("provisioning: ad group creation failed")
	ErrAdsFailed          = errors.New("provisioning: text ads creation failed")
	ErrKeywordsFailed     = errors.New("provisioning: keywords creation failed")
	ErrResourceNotFetched = errors.New("provisioning: created resource not found on fetch")
)
