package adwords

import (
	"context"

	pkghttp "campaign-srv/pkg/http"
)

// IAdWords defines the interface for the legacy AdWords SOAP API.
// Implementations are safe for concurrent use.
type IAdWords interface {
	MutateCampaigns(ctx context.Context, ops []CampaignOperation) ([]Entity, error)
	MutateAdGroups(ctx context.Context, ops []AdGroupOperation) ([]Entity, error)
	MutateAdGroupAds(ctx context.Context, ops []AdGroupAdOperation) ([]Entity, error)
	MutateAdGroupCriteria(ctx context.Context, ops []AdGroupCriterionOperation) ([]Entity, error)
}

// NewAdWords creates a new AdWords SOAP client. Returns the interface.
func NewAdWords(cfg Config) IAdWords {
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

	return &adWordsImpl{
		baseURL:          baseURL,
		version:          version,
		developerToken:   cfg.DeveloperToken,
		accessToken:      cfg.AccessToken,
		clientCustomerID: cfg.ClientCustomerID,
		userAgent:        cfg.UserAgent,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: timeout,
			Retries: 0,
		}),
	}
}
