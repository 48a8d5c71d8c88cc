package googleads

import "time"

const (
	// DefaultBaseURL is the Google Ads REST endpoint.
	DefaultBaseURL = "https://googleads.googleapis.com"
	// DefaultVersion is the API version used when none is configured.
	DefaultVersion = "v2"
	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 30 * time.Second

	// PageSize is the page size used for search requests.
	PageSize = 1000
)

// Enum values used by the mutate payloads.
const (
	BudgetDeliveryStandard = "STANDARD"

	ChannelTypeSearch = "SEARCH"

	StatusEnabled = "ENABLED"
	StatusPaused  = "PAUSED"

	AdGroupTypeSearchStandard = "SEARCH_STANDARD"

	MatchTypeExact = "EXACT"
)

// Mutate service paths.
const (
	serviceCampaignBudgets = "campaignBudgets"
	serviceCampaigns       = "campaigns"
	serviceAdGroups        = "adGroups"
	serviceAdGroupAds      = "adGroupAds"
	serviceAdGroupCriteria = "adGroupCriteria"
	serviceGoogleAdsSearch = "googleAds"
	headerDeveloperToken   = "developer-token"
	headerLoginCustomerID  = "login-customer-id"
)
