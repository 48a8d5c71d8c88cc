package provisioning

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Provision(ctx context.Context, input ProvisionInput) (ProvisionOutput, error)
	GetRun(ctx context.Context, runID string) (RunOutput, error)
	ListRuns(ctx context.Context, input ListRunsInput) (ListRunsOutput, error)
}

// Producer publishes run lifecycle events.
type Producer interface {
	PublishRunCompleted(ctx context.Context, event RunCompletedEvent) error
	PublishRunFailed(ctx context.Context, event RunFailedEvent) error
}
