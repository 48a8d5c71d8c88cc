package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning"
	"campaign-srv/internal/provisioning/repository"
)

// GetRun returns a run with its provisioned resources, serving from cache
// when possible. On a miss the run row and its resources are fetched in
// parallel.
func (uc *implUseCase) GetRun(ctx context.Context, runID string) (provisioning.RunOutput, error) {
	if run, resources, err := uc.cache.GetRunDetail(ctx, runID); err == nil {
		return provisioning.RunOutput{
			Run:       *run,
			Resources: resources,
		}, nil
	}

	var (
		run       model.ProvisioningRun
		resources []model.ProvisionedResource
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		run, err = uc.repo.DetailRun(gctx, runID)
		return err
	})

	g.Go(func() error {
		var err error
		resources, err = uc.repo.ListResourcesByRun(gctx, runID)
		return err
	})

	if err := g.Wait(); err != nil {
		if err == repository.ErrRunNotFound {
			return provisioning.RunOutput{}, provisioning.ErrRunNotFound
		}
		uc.l.Errorf(ctx, "provisioning.usecase.GetRun: failed to load run: %v", err)
		return provisioning.RunOutput{}, err
	}

	if err := uc.cache.SetRunDetail(ctx, run, resources); err != nil {
		uc.l.Warnf(ctx, "provisioning.usecase.GetRun: failed to cache run %s: %v", runID, err)
	}

	return provisioning.RunOutput{
		Run:       run,
		Resources: resources,
	}, nil
}

// ListRuns returns a page of runs matching the filters.
func (uc *implUseCase) ListRuns(ctx context.Context, input provisioning.ListRunsInput) (provisioning.ListRunsOutput, error) {
	runs, pag, err := uc.repo.GetRuns(ctx, repository.GetRunsOptions{
		CustomerID:    input.CustomerID,
		Status:        input.Status,
		PaginateQuery: input.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "provisioning.usecase.ListRuns: failed to list runs: %v", err)
		return provisioning.ListRunsOutput{}, err
	}

	return provisioning.ListRunsOutput{
		Runs:      runs,
		Paginator: pag,
	}, nil
}
