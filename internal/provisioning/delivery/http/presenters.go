package http

import (
	"strings"

	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning"
	"campaign-srv/pkg/paginator"
	"campaign-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

// provisionReq - Request body for Provision
type provisionReq struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Mode       string `json:"mode"`
}

// validate - Custom validation. Mode is case-insensitive.
func (r provisionReq) validate() error {
	mode := strings.ToUpper(r.Mode)
	if mode != "" && mode != model.RunModeNative && mode != model.RunModeHybrid {
		return errInvalidMode
	}
	return nil
}

// toInput - Convert to UseCase input
func (r provisionReq) toInput(requestedBy string) provisioning.ProvisionInput {
	return provisioning.ProvisionInput{
		CustomerID:  r.CustomerID,
		Mode:        r.Mode,
		RequestedBy: requestedBy,
	}
}

// listRunsReq - Query params for ListRuns
type listRunsReq struct {
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
	paginator.PaginateQuery
}

// toInput - Convert to UseCase input
func (r listRunsReq) toInput() provisioning.ListRunsInput {
	return provisioning.ListRunsInput{
		CustomerID:    r.CustomerID,
		Status:        r.Status,
		PaginateQuery: r.PaginateQuery,
	}
}

// =====================================================
// Response DTOs
// =====================================================

// resourceResp - One provisioned resource
type resourceResp struct {
	ID           string `json:"id"`
	ResourceType string `json:"resource_type"`
	ResourceName string `json:"resource_name"`
	ExternalID   int64  `json:"external_id"`
	DisplayName  string `json:"display_name"`
	CreatedAt    string `json:"created_at"`
}

// runResp - One provisioning run
type runResp struct {
	ID               string `json:"id"`
	CustomerID       string `json:"customer_id"`
	Mode             string `json:"mode"`
	Status           string `json:"status"`
	FailedStep       string `json:"failed_step,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"`
	BudgetResource   string `json:"budget_resource,omitempty"`
	CampaignResource string `json:"campaign_resource,omitempty"`
	AdGroupResource  string `json:"ad_group_resource,omitempty"`
	AdsCreated       int    `json:"ads_created"`
	KeywordsCreated  int    `json:"keywords_created"`
	ReportURL        string `json:"report_url,omitempty"`
	RequestedBy      string `json:"requested_by,omitempty"`
	StartedAt        string `json:"started_at,omitempty"`
	CompletedAt      string `json:"completed_at,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// runDetailResp - Run with its resources
type runDetailResp struct {
	Run       runResp        `json:"run"`
	Resources []resourceResp `json:"resources"`
}

// listRunsResp - Page of runs
type listRunsResp struct {
	Runs []runResp                   `json:"runs"`
	Meta paginator.PaginatorResponse `json:"meta"`
}

func newRunResp(run model.ProvisioningRun) runResp {
	resp := runResp{
		ID:               run.ID,
		CustomerID:       run.CustomerID,
		Mode:             run.Mode,
		Status:           run.Status,
		FailedStep:       run.FailedStep,
		ErrorMessage:     run.ErrorMessage,
		BudgetResource:   run.BudgetResource,
		CampaignResource: run.CampaignResource,
		AdGroupResource:  run.AdGroupResource,
		AdsCreated:       run.AdsCreated,
		KeywordsCreated:  run.KeywordsCreated,
		ReportURL:        run.ReportURL,
		RequestedBy:      run.RequestedBy,
		CreatedAt:        run.CreatedAt.Format(response.DateTimeFormat),
	}
	if run.StartedAt != nil {
		resp.StartedAt = run.StartedAt.Format(response.DateTimeFormat)
	}
	if run.CompletedAt != nil {
		resp.CompletedAt = run.CompletedAt.Format(response.DateTimeFormat)
	}
	return resp
}

func newResourceResps(resources []model.ProvisionedResource) []resourceResp {
	resps := make([]resourceResp, 0, len(resources))
	for _, res := range resources {
		resps = append(resps, resourceResp{
			ID:           res.ID,
			ResourceType: res.ResourceType,
			ResourceName: res.ResourceName,
			ExternalID:   res.ExternalID,
			DisplayName:  res.DisplayName,
			CreatedAt:    res.CreatedAt.Format(response.DateTimeFormat),
		})
	}
	return resps
}

// newRunDetailResp - Convert UseCase output to response
func (h *handler) newRunDetailResp(run model.ProvisioningRun, resources []model.ProvisionedResource) runDetailResp {
	return runDetailResp{
		Run:       newRunResp(run),
		Resources: newResourceResps(resources),
	}
}

// newListRunsResp - Convert UseCase output to response
func (h *handler) newListRunsResp(output provisioning.ListRunsOutput) listRunsResp {
	runs := make([]runResp, 0, len(output.Runs))
	for _, run := range output.Runs {
		runs = append(runs, newRunResp(run))
	}
	return listRunsResp{
		Runs: runs,
		Meta: output.Paginator.ToResponse(),
	}
}
