package googleads

import (
	"context"

	pkghttp "campaign-srv/pkg/http"
)

// IGoogleAds defines the interface for the Google Ads REST API.
// Implementations are safe for concurrent use.
type IGoogleAds interface {
	MutateCampaignBudgets(ctx context.Context, customerID string, ops []CampaignBudgetOperation) (*MutateResponse, error)
	MutateCampaigns(ctx context.Context, customerID string, ops []CampaignOperation) (*MutateResponse, error)
	MutateAdGroups(ctx context.Context, customerID string, ops []AdGroupOperation) (*MutateResponse, error)
	MutateAdGroupAds(ctx context.Context, customerID string, ops []AdGroupAdOperation) (*MutateResponse, error)
	MutateAdGroupCriteria(ctx context.Context, customerID string, ops []AdGroupCriterionOperation) (*MutateResponse, error)
	Search(ctx context.Context, customerID, query string) ([]SearchRow, error)
}

// NewGoogleAds creates a new Google Ads API client. Returns the interface.
func NewGoogleAds(cfg Config) IGoogleAds {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &googleAdsImpl{
		baseURL:         baseURL,
		version:         version,
		developerToken:  cfg.DeveloperToken,
		accessToken:     cfg.AccessToken,
		loginCustomerID: cfg.LoginCustomerID,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: timeout,
			Retries: 0,
		}),
	}
}
