package repository

import "campaign-srv/pkg/paginator"

// CreateRunOptions - Options for CreateRun operation
type CreateRunOptions struct {
	ID          string
	CustomerID  string
	Mode        string
	RequestedBy string
}

// GetRunsOptions - Options for GetRuns query (with pagination)
type GetRunsOptions struct {
	// Filters
	CustomerID string // Filter by customer_id
	Status     string // Filter by status (PENDING, RUNNING, COMPLETED, FAILED)

	// Pagination (REQUIRED for Get)
	PaginateQuery paginator.PaginateQuery
}

// UpdateRunProgressOptions - Options when recording a completed step
type UpdateRunProgressOptions struct {
	ID               string
	BudgetResource   string
	CampaignResource string
	AdGroupResource  string
	AdsCreated       int
	KeywordsCreated  int
}

// MarkRunCompletedOptions - Options when a run completes
type MarkRunCompletedOptions struct {
	ID        string
	ReportURL string
}

// MarkRunFailedOptions - Options when a run fails
type MarkRunFailedOptions struct {
	ID           string
	FailedStep   string
	ErrorMessage string
	ReportURL    string
}

// CreateResourceOptions - Options for one provisioned resource record
type CreateResourceOptions struct {
	RunID        string
	ResourceType string
	ResourceName string
	ExternalID   int64
	DisplayName  string
}
