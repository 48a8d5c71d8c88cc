package model

import "time"

// Run status constants
const (
	RunStatusPending   = "PENDING"
	RunStatusRunning   = "RUNNING"
	RunStatusCompleted = "COMPLETED"
	RunStatusFailed    = "FAILED"
)

// Run mode constants
const (
	// RunModeNative provisions every entity through the Google Ads API.
	RunModeNative = "NATIVE"
	// RunModeHybrid provisions the budget through the Google Ads API and
	// everything below it through the legacy AdWords API.
	RunModeHybrid = "HYBRID"
)

// Pipeline step constants, in execution order.
const (
	StepBudget   = "BUDGET"
	StepCampaign = "CAMPAIGN"
	StepAdGroup  = "AD_GROUP"
	StepAds      = "ADS"
	StepKeywords = "KEYWORDS"
)

// Provisioned resource type constants
const (
	ResourceTypeBudget   = "CAMPAIGN_BUDGET"
	ResourceTypeCampaign = "CAMPAIGN"
	ResourceTypeAdGroup  = "AD_GROUP"
	ResourceTypeAd       = "AD"
	ResourceTypeKeyword  = "KEYWORD"
)

// ProvisioningRun represents one execution of the campaign provisioning
// pipeline for a customer account.
type ProvisioningRun struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Mode       string `json:"mode"`

	// Lifecycle
	Status       string `json:"status"`
	FailedStep   string `json:"failed_step,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`

	// Created top-level resources
	BudgetResource   string `json:"budget_resource,omitempty"`
	CampaignResource string `json:"campaign_resource,omitempty"`
	AdGroupResource  string `json:"ad_group_resource,omitempty"`

	// Batch counts
	AdsCreated      int `json:"ads_created"`
	KeywordsCreated int `json:"keywords_created"`

	// Output
	ReportURL string `json:"report_url,omitempty"`

	RequestedBy string `json:"requested_by,omitempty"`

	// Timestamps
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProvisionedResource is one remote resource created by a run.
type ProvisionedResource struct {
	ID           string    `json:"id"`
	RunID        string    `json:"run_id"`
	ResourceType string    `json:"resource_type"`
	ResourceName string    `json:"resource_name,omitempty"`
	ExternalID   int64     `json:"external_id,omitempty"`
	DisplayName  string    `json:"display_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
