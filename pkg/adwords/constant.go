package adwords

import "time"

const (
	// DefaultBaseURL is the legacy AdWords SOAP endpoint root.
	DefaultBaseURL = "https://adwords.google.com/api/adwords/cm"
	// DefaultVersion is the API version used when none is configured.
	DefaultVersion = "v201809"
	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 60 * time.Second
)

// Enum values used by mutate operands.
const (
	OperatorAdd = "ADD"

	ChannelTypeSearch = "SEARCH"

	StatusEnabled = "ENABLED"
	StatusPaused  = "PAUSED"

	BiddingStrategyManualCpc = "MANUAL_CPC"

	AdRotationModeOptimize = "OPTIMIZE"

	CriterionUseBiddable = "BIDDABLE"
	CriterionTypeKeyword = "Keyword"

	MatchTypeBroad = "BROAD"
)

// Service names under the endpoint root.
const (
	serviceCampaign         = "CampaignService"
	serviceAdGroup          = "AdGroupService"
	serviceAdGroupAd        = "AdGroupAdService"
	serviceAdGroupCriterion = "AdGroupCriterionService"
)
