package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"campaign-srv/internal/account"
	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning"
	"campaign-srv/internal/provisioning/repository"
)

// Provision runs the full campaign provisioning pipeline for a customer:
// budget, campaign, ad group, text ads, keywords. Each step depends on the
// previous one, so the first failure aborts the run. Nothing already created
// is rolled back.
func (uc *implUseCase) Provision(ctx context.Context, input provisioning.ProvisionInput) (provisioning.ProvisionOutput, error) {
	if input.CustomerID == "" {
		return provisioning.ProvisionOutput{}, provisioning.ErrCustomerRequired
	}

	mode := strings.ToUpper(input.Mode)
	if mode == "" {
		mode = model.RunModeNative
	}
	if mode != model.RunModeNative && mode != model.RunModeHybrid {
		return provisioning.ProvisionOutput{}, provisioning.ErrInvalidMode
	}

	if err := uc.checkAccount(ctx, input.CustomerID); err != nil {
		return provisioning.ProvisionOutput{}, err
	}

	run, err := uc.repo.CreateRun(ctx, repository.CreateRunOptions{
		ID:          uuid.NewString(),
		CustomerID:  input.CustomerID,
		Mode:        mode,
		RequestedBy: input.RequestedBy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "provisioning.usecase.Provision: failed to create run: %v", err)
		return provisioning.ProvisionOutput{}, err
	}

	if err := uc.repo.MarkRunRunning(ctx, run.ID); err != nil {
		uc.l.Errorf(ctx, "provisioning.usecase.Provision: failed to mark run running: %v", err)
		return provisioning.ProvisionOutput{}, err
	}
	run.Status = model.RunStatusRunning

	uc.l.Infof(ctx, "provisioning.usecase.Provision: run %s started (customer=%s mode=%s)",
		run.ID, run.CustomerID, run.Mode)

	return uc.executeRun(ctx, run)
}

// checkAccount resolves the account's API credentials before the run
// starts. A missing account, a suspended account, or stored tokens that
// fail to decrypt all abort before any remote call.
func (uc *implUseCase) checkAccount(ctx context.Context, customerID string) error {
	if _, err := uc.accounts.Credentials(ctx, customerID); err != nil {
		switch err {
		case account.ErrAccountNotFound:
			return provisioning.ErrAccountNotFound
		case account.ErrAccountSuspended:
			return provisioning.ErrAccountSuspended
		default:
			uc.l.Errorf(ctx, "provisioning.usecase.checkAccount: failed to resolve credentials: %v", err)
			return err
		}
	}

	return nil
}

// executeRun drives the five pipeline steps and finalizes the run record.
func (uc *implUseCase) executeRun(ctx context.Context, run model.ProvisioningRun) (provisioning.ProvisionOutput, error) {
	var resources []model.ProvisionedResource

	// Step 1: budget. Always created through the new API, in every mode.
	budget, err := uc.createBudget(ctx, run.CustomerID)
	if err != nil {
		return uc.failRun(ctx, run, resources, model.StepBudget, provisioning.ErrBudgetFailed, err)
	}
	run.BudgetResource = budget.ResourceName
	resources = uc.recordResources(ctx, run, resources, []repository.CreateResourceOptions{{
		RunID:        run.ID,
		ResourceType: model.ResourceTypeBudget,
		ResourceName: budget.ResourceName,
		ExternalID:   budget.ID,
		DisplayName:  budget.Name,
	}})
	uc.saveProgress(ctx, run)

	// Step 2: campaign, referencing the budget.
	var campaign provisioning.CampaignResult
	if run.Mode == model.RunModeHybrid {
		campaign, err = uc.createCampaignLegacy(ctx, run.CustomerID, budget.ID)
	} else {
		campaign, err = uc.createCampaign(ctx, run.CustomerID, budget.ResourceName)
	}
	if err != nil {
		return uc.failRun(ctx, run, resources, model.StepCampaign, provisioning.ErrCampaignFailed, err)
	}
	run.CampaignResource = campaign.ResourceName
	resources = uc.recordResources(ctx, run, resources, []repository.CreateResourceOptions{{
		RunID:        run.ID,
		ResourceType: model.ResourceTypeCampaign,
		ResourceName: campaign.ResourceName,
		ExternalID:   campaign.ID,
		DisplayName:  campaign.Name,
	}})
	uc.saveProgress(ctx, run)

	// Step 3: ad group, inside the campaign.
	var adGroup provisioning.AdGroupResult
	if run.Mode == model.RunModeHybrid {
		adGroup, err = uc.createAdGroupLegacy(ctx, run.CustomerID, campaign.ID)
	} else {
		adGroup, err = uc.createAdGroup(ctx, run.CustomerID, campaign.ResourceName)
	}
	if err != nil {
		return uc.failRun(ctx, run, resources, model.StepAdGroup, provisioning.ErrAdGroupFailed, err)
	}
	run.AdGroupResource = adGroup.ResourceName
	resources = uc.recordResources(ctx, run, resources, []repository.CreateResourceOptions{{
		RunID:        run.ID,
		ResourceType: model.ResourceTypeAdGroup,
		ResourceName: adGroup.ResourceName,
		ExternalID:   adGroup.ID,
		DisplayName:  adGroup.Name,
	}})
	uc.saveProgress(ctx, run)

	// Step 4: text ads, one batched call.
	var ads []provisioning.AdResult
	if run.Mode == model.RunModeHybrid {
		ads, err = uc.createAdsLegacy(ctx, run.CustomerID, adGroup.ID)
	} else {
		ads, err = uc.createAds(ctx, run.CustomerID, adGroup.ResourceName)
	}
	if err != nil {
		return uc.failRun(ctx, run, resources, model.StepAds, provisioning.ErrAdsFailed, err)
	}
	run.AdsCreated = len(ads)
	adOpts := make([]repository.CreateResourceOptions, 0, len(ads))
	for _, ad := range ads {
		adOpts = append(adOpts, repository.CreateResourceOptions{
			RunID:        run.ID,
			ResourceType: model.ResourceTypeAd,
			ResourceName: ad.ResourceName,
			ExternalID:   ad.ID,
			DisplayName:  ad.HeadlinePart1,
		})
	}
	resources = uc.recordResources(ctx, run, resources, adOpts)
	uc.saveProgress(ctx, run)

	// Step 5: keywords, one batched call.
	var keywords []provisioning.KeywordResult
	if run.Mode == model.RunModeHybrid {
		keywords, err = uc.createKeywordsLegacy(ctx, run.CustomerID, adGroup.ID)
	} else {
		keywords, err = uc.createKeywords(ctx, run.CustomerID, adGroup.ResourceName)
	}
	if err != nil {
		return uc.failRun(ctx, run, resources, model.StepKeywords, provisioning.ErrKeywordsFailed, err)
	}
	run.KeywordsCreated = len(keywords)
	kwOpts := make([]repository.CreateResourceOptions, 0, len(keywords))
	for _, kw := range keywords {
		kwOpts = append(kwOpts, repository.CreateResourceOptions{
			RunID:        run.ID,
			ResourceType: model.ResourceTypeKeyword,
			ResourceName: kw.ResourceName,
			ExternalID:   kw.ID,
			DisplayName:  kw.Text,
		})
	}
	resources = uc.recordResources(ctx, run, resources, kwOpts)
	uc.saveProgress(ctx, run)

	return uc.completeRun(ctx, run, resources)
}

// recordResources persists one step's created resources. Persistence failures
// are logged but never abort the run, the ad platform already holds the
// resources.
func (uc *implUseCase) recordResources(
	ctx context.Context,
	run model.ProvisioningRun,
	acc []model.ProvisionedResource,
	opts []repository.CreateResourceOptions,
) []model.ProvisionedResource {
	if len(opts) == 0 {
		return acc
	}

	created, err := uc.repo.CreateResources(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "provisioning.usecase.recordResources: failed to persist resources for run %s: %v", run.ID, err)
		return acc
	}

	return append(acc, created...)
}

func (uc *implUseCase) saveProgress(ctx context.Context, run model.ProvisioningRun) {
	err := uc.repo.UpdateRunProgress(ctx, repository.UpdateRunProgressOptions{
		ID:               run.ID,
		BudgetResource:   run.BudgetResource,
		CampaignResource: run.CampaignResource,
		AdGroupResource:  run.AdGroupResource,
		AdsCreated:       run.AdsCreated,
		KeywordsCreated:  run.KeywordsCreated,
	})
	if err != nil {
		uc.l.Errorf(ctx, "provisioning.usecase.saveProgress: failed to update run %s: %v", run.ID, err)
	}
}

// completeRun finalizes a successful run: report upload, status flip,
// completion event.
func (uc *implUseCase) completeRun(
	ctx context.Context,
	run model.ProvisioningRun,
	resources []model.ProvisionedResource,
) (provisioning.ProvisionOutput, error) {
	run.Status = model.RunStatusCompleted
	reportURL := uc.uploadReport(ctx, run, resources)

	final, err := uc.repo.MarkRunCompleted(ctx, repository.MarkRunCompletedOptions{
		ID:        run.ID,
		ReportURL: reportURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "provisioning.usecase.completeRun: failed to mark run %s completed: %v", run.ID, err)
		return provisioning.ProvisionOutput{}, err
	}

	uc.invalidateCache(ctx, run.ID)

	completedAt := time.Now()
	if final.CompletedAt != nil {
		completedAt = *final.CompletedAt
	}
	if err := uc.producer.PublishRunCompleted(ctx, provisioning.RunCompletedEvent{
		RunID:            final.ID,
		CustomerID:       final.CustomerID,
		Mode:             final.Mode,
		CampaignResource: final.CampaignResource,
		AdsCreated:       final.AdsCreated,
		KeywordsCreated:  final.KeywordsCreated,
		ReportURL:        final.ReportURL,
		CompletedAt:      completedAt,
	}); err != nil {
		uc.l.Warnf(ctx, "provisioning.usecase.completeRun: failed to publish completion event for run %s: %v", run.ID, err)
	}

	uc.l.Infof(ctx, "provisioning.usecase.completeRun: run %s completed (ads=%d keywords=%d)",
		final.ID, final.AdsCreated, final.KeywordsCreated)

	return provisioning.ProvisionOutput{
		Run:       final,
		Resources: resources,
	}, nil
}

// failRun finalizes a failed run and returns the step's sentinel error.
func (uc *implUseCase) failRun(
	ctx context.Context,
	run model.ProvisioningRun,
	resources []model.ProvisionedResource,
	step string,
	sentinel error,
	cause error,
) (provisioning.ProvisionOutput, error) {
	uc.l.Errorf(ctx, "provisioning.usecase.failRun: run %s failed at %s: %v", run.ID, step, cause)

	run.Status = model.RunStatusFailed
	run.FailedStep = step
	run.ErrorMessage = cause.Error()
	run.ReportURL = uc.uploadReport(ctx, run, resources)

	final, err := uc.repo.MarkRunFailed(ctx, repository.MarkRunFailedOptions{
		ID:           run.ID,
		FailedStep:   step,
		ErrorMessage: cause.Error(),
		ReportURL:    run.ReportURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "provisioning.usecase.failRun: failed to mark run %s failed: %v", run.ID, err)
		final = run
	}

	uc.invalidateCache(ctx, run.ID)

	if err := uc.producer.PublishRunFailed(ctx, provisioning.RunFailedEvent{
		RunID:        final.ID,
		CustomerID:   final.CustomerID,
		Mode:         final.Mode,
		FailedStep:   step,
		ErrorMessage: cause.Error(),
		FailedAt:     time.Now(),
	}); err != nil {
		uc.l.Warnf(ctx, "provisioning.usecase.failRun: failed to publish failure event for run %s: %v", run.ID, err)
	}

	return provisioning.ProvisionOutput{
		Run:       final,
		Resources: resources,
	}, sentinel
}

func (uc *implUseCase) invalidateCache(ctx context.Context, runID string) {
	if err := uc.cache.InvalidateRunDetail(ctx, runID); err != nil {
		uc.l.Warnf(ctx, "provisioning.usecase.invalidateCache: failed to invalidate run %s: %v", runID, err)
	}
}
