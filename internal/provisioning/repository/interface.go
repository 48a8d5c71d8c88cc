package repository

import (
	"context"

	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	RunRepository
	ResourceRepository
}

// RunRepository - Operations for provisioning_runs table
type RunRepository interface {
	CreateRun(ctx context.Context, opt CreateRunOptions) (model.ProvisioningRun, error)
	DetailRun(ctx context.Context, id string) (model.ProvisioningRun, error)
	GetRuns(ctx context.Context, opt GetRunsOptions) ([]model.ProvisioningRun, paginator.Paginator, error)
	MarkRunRunning(ctx context.Context, id string) error
	UpdateRunProgress(ctx context.Context, opt UpdateRunProgressOptions) error
	MarkRunCompleted(ctx context.Context, opt MarkRunCompletedOptions) (model.ProvisioningRun, error)
	MarkRunFailed(ctx context.Context, opt MarkRunFailedOptions) (model.ProvisioningRun, error)
}

// ResourceRepository - Operations for provisioned_resources table
type ResourceRepository interface {
	CreateResources(ctx context.Context, opts []CreateResourceOptions) ([]model.ProvisionedResource, error)
	ListResourcesByRun(ctx context.Context, runID string) ([]model.ProvisionedResource, error)
}

// Cache - Run detail cache
type Cache interface {
	GetRunDetail(ctx context.Context, runID string) (*model.ProvisioningRun, []model.ProvisionedResource, error)
	SetRunDetail(ctx context.Context, run model.ProvisioningRun, resources []model.ProvisionedResource) error
	InvalidateRunDetail(ctx context.Context, runID string) error
}
