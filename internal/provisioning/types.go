package provisioning

import (
	"time"

	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
)

// ============================================
// UseCase Input/Output Types
// ============================================

// ProvisionInput is the input for a provisioning run.
type ProvisionInput struct {
	CustomerID  string
	Mode        string // NATIVE | HYBRID; defaults to NATIVE
	RequestedBy string
}

// ProvisionOutput is the result of a provisioning run.
type ProvisionOutput struct {
	Run       model.ProvisioningRun
	Resources []model.ProvisionedResource
}

// RunOutput is the detail of a single run.
type RunOutput struct {
	Run       model.ProvisioningRun
	Resources []model.ProvisionedResource
}

// ListRunsInput filters and paginates the run list.
type ListRunsInput struct {
	CustomerID    string
	Status        string
	PaginateQuery paginator.PaginateQuery
}

// ListRunsOutput is a page of runs.
type ListRunsOutput struct {
	Runs      []model.ProvisioningRun
	Paginator paginator.Paginator
}

// ============================================
// Pipeline Step Results
// ============================================

// BudgetResult is the budget created by the first step.
type BudgetResult struct {
	ResourceName string
	ID           int64
	Name         string
}

// CampaignResult is the campaign created by the second step.
type CampaignResult struct {
	ResourceName string
	ID           int64
	Name         string
}

// AdGroupResult is the ad group created by the third step.
type AdGroupResult struct {
	ResourceName string
	ID           int64
	Name         string
}

// AdResult is one created text ad.
type AdResult struct {
	ResourceName  string
	ID            int64
	HeadlinePart1 string
	HeadlinePart2 string
}

// KeywordResult is one created keyword criterion.
type KeywordResult struct {
	ResourceName string
	ID           int64
	Text         string
	MatchType    string
}

// ============================================
// Event Types (to Kafka)
// ============================================

// RunCompletedEvent is published when a run completes successfully.
type RunCompletedEvent struct {
	RunID            string    `json:"run_id"`
	CustomerID       string    `json:"customer_id"`
	Mode             string    `json:"mode"`
	CampaignResource string    `json:"campaign_resource"`
	AdsCreated       int       `json:"ads_created"`
	KeywordsCreated  int       `json:"keywords_created"`
	ReportURL        string    `json:"report_url,omitempty"`
	CompletedAt      time.Time `json:"completed_at"`
}

// RunFailedEvent is published when a run fails.
type RunFailedEvent struct {
	RunID        string    `json:"run_id"`
	CustomerID   string    `json:"customer_id"`
	Mode         string    `json:"mode"`
	FailedStep   string    `json:"failed_step"`
	ErrorMessage string    `json:"error_message"`
	FailedAt     time.Time `json:"failed_at"`
}

// ============================================
// Run Report (to object storage)
// ============================================

// RunReport is the JSON document uploaded to object storage after a run.
type RunReport struct {
	RunID       string                      `json:"run_id"`
	CustomerID  string                      `json:"customer_id"`
	Mode        string                      `json:"mode"`
	Status      string                      `json:"status"`
	FailedStep  string                      `json:"failed_step,omitempty"`
	Error       string                      `json:"error,omitempty"`
	Resources   []model.ProvisionedResource `json:"resources"`
	StartedAt   *time.Time                  `json:"started_at,omitempty"`
	CompletedAt *time.Time                  `json:"completed_at,omitempty"`
	GeneratedAt time.Time                   `json:"generated_at"`
}
