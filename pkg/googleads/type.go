package googleads

import (
	"time"

	pkghttp "campaign-srv/pkg/http"
)

// Config holds Google Ads client configuration.
type Config struct {
	BaseURL         string
	Version         string
	DeveloperToken  string
	AccessToken     string
	LoginCustomerID string
	Timeout         time.Duration
}

// googleAdsImpl implements IGoogleAds.
type googleAdsImpl struct {
	baseURL         string
	version         string
	developerToken  string
	accessToken     string
	loginCustomerID string
	httpClient      pkghttp.IClient
}

// CampaignBudget is a shared campaign budget.
type CampaignBudget struct {
	ResourceName   string `json:"resourceName,omitempty"`
	ID             int64  `json:"id,omitempty,string"`
	Name           string `json:"name,omitempty"`
	DeliveryMethod string `json:"deliveryMethod,omitempty"`
	AmountMicros   int64  `json:"amountMicros,omitempty,string"`
}

// CampaignBudgetOperation is a single budget mutate operation.
type CampaignBudgetOperation struct {
	Create *CampaignBudget `json:"create,omitempty"`
}

// ManualCpc is the manual CPC bidding strategy.
type ManualCpc struct {
	EnhancedCpcEnabled bool `json:"enhancedCpcEnabled"`
}

// NetworkSettings selects the networks a campaign serves on.
type NetworkSettings struct {
	TargetGoogleSearch         bool `json:"targetGoogleSearch"`
	TargetSearchNetwork        bool `json:"targetSearchNetwork"`
	TargetContentNetwork       bool `json:"targetContentNetwork"`
	TargetPartnerSearchNetwork bool `json:"targetPartnerSearchNetwork"`
}

// Campaign is a search campaign.
type Campaign struct {
	ResourceName           string           `json:"resourceName,omitempty"`
	ID                     int64            `json:"id,omitempty,string"`
	Name                   string           `json:"name,omitempty"`
	Status                 string           `json:"status,omitempty"`
	AdvertisingChannelType string           `json:"advertisingChannelType,omitempty"`
	ManualCpc              *ManualCpc       `json:"manualCpc,omitempty"`
	CampaignBudget         string           `json:"campaignBudget,omitempty"`
	NetworkSettings        *NetworkSettings `json:"networkSettings,omitempty"`
	StartDate              string           `json:"startDate,omitempty"`
	EndDate                string           `json:"endDate,omitempty"`
}

// CampaignOperation is a single campaign mutate operation.
type CampaignOperation struct {
	Create *Campaign `json:"create,omitempty"`
}

// AdGroup is an ad group within a campaign.
type AdGroup struct {
	ResourceName string `json:"resourceName,omitempty"`
	ID           int64  `json:"id,omitempty,string"`
	Name         string `json:"name,omitempty"`
	Campaign     string `json:"campaign,omitempty"`
	Status       string `json:"status,omitempty"`
	Type         string `json:"type,omitempty"`
	CpcBidMicros int64  `json:"cpcBidMicros,omitempty,string"`
}

// AdGroupOperation is a single ad group mutate operation.
type AdGroupOperation struct {
	Create *AdGroup `json:"create,omitempty"`
}

// ExpandedTextAdInfo is the expanded text ad payload.
type ExpandedTextAdInfo struct {
	HeadlinePart1 string `json:"headlinePart1,omitempty"`
	HeadlinePart2 string `json:"headlinePart2,omitempty"`
	Description   string `json:"description,omitempty"`
}

// Ad is the creative attached to an ad group ad.
type Ad struct {
	ResourceName   string              `json:"resourceName,omitempty"`
	ID             int64               `json:"id,omitempty,string"`
	ExpandedTextAd *ExpandedTextAdInfo `json:"expandedTextAd,omitempty"`
	FinalUrls      []string            `json:"finalUrls,omitempty"`
}

// AdGroupAd links an ad to an ad group.
type AdGroupAd struct {
	ResourceName string `json:"resourceName,omitempty"`
	AdGroup      string `json:"adGroup,omitempty"`
	Status       string `json:"status,omitempty"`
	Ad           *Ad    `json:"ad,omitempty"`
}

// AdGroupAdOperation is a single ad group ad mutate operation.
type AdGroupAdOperation struct {
	Create *AdGroupAd `json:"create,omitempty"`
}

// KeywordInfo is a keyword criterion payload.
type KeywordInfo struct {
	Text      string `json:"text,omitempty"`
	MatchType string `json:"matchType,omitempty"`
}

// AdGroupCriterion is a criterion attached to an ad group.
type AdGroupCriterion struct {
	ResourceName string       `json:"resourceName,omitempty"`
	CriterionID  int64        `json:"criterionId,omitempty,string"`
	AdGroup      string       `json:"adGroup,omitempty"`
	Status       string       `json:"status,omitempty"`
	Type         string       `json:"type,omitempty"`
	Keyword      *KeywordInfo `json:"keyword,omitempty"`
}

// AdGroupCriterionOperation is a single criterion mutate operation.
type AdGroupCriterionOperation struct {
	Create *AdGroupCriterion `json:"create,omitempty"`
}

// MutateResult is one result of a mutate request.
type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// MutateResponse is the response of a mutate request.
type MutateResponse struct {
	Results []MutateResult `json:"results"`
}

// SearchRow is one row of a search response. Only the selected resources
// are populated.
type SearchRow struct {
	CampaignBudget   *CampaignBudget   `json:"campaignBudget,omitempty"`
	Campaign         *Campaign         `json:"campaign,omitempty"`
	AdGroup          *AdGroup          `json:"adGroup,omitempty"`
	AdGroupAd        *AdGroupAd        `json:"adGroupAd,omitempty"`
	AdGroupCriterion *AdGroupCriterion `json:"adGroupCriterion,omitempty"`
}

type searchRequest struct {
	Query     string `json:"query"`
	PageSize  int    `json:"pageSize"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

type mutateRequest struct {
	Operations any `json:"operations"`
}
