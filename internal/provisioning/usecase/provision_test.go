package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"campaign-srv/internal/account"
	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning"
	"campaign-srv/internal/provisioning/repository"
	"campaign-srv/pkg/adwords"
	"campaign-srv/pkg/googleads"
	"campaign-srv/pkg/minio"
	"campaign-srv/pkg/paginator"
)

// ============================================
// Fakes
// ============================================

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type fakeRepo struct {
	createdRun      model.ProvisioningRun
	markedRunning   bool
	progressUpdates []repository.UpdateRunProgressOptions
	resourceOpts    []repository.CreateResourceOptions
	completedOpt    *repository.MarkRunCompletedOptions
	failedOpt       *repository.MarkRunFailedOptions

	detailRun          model.ProvisioningRun
	detailErr          error
	listResources      []model.ProvisionedResource
	listRunsResult     []model.ProvisioningRun
	createResourcesErr error
}

func (f *fakeRepo) CreateRun(ctx context.Context, opt repository.CreateRunOptions) (model.ProvisioningRun, error) {
	f.createdRun = model.ProvisioningRun{
		ID:          opt.ID,
		CustomerID:  opt.CustomerID,
		Mode:        opt.Mode,
		Status:      model.RunStatusPending,
		RequestedBy: opt.RequestedBy,
	}
	return f.createdRun, nil
}

func (f *fakeRepo) DetailRun(ctx context.Context, id string) (model.ProvisioningRun, error) {
	return f.detailRun, f.detailErr
}

func (f *fakeRepo) GetRuns(ctx context.Context, opt repository.GetRunsOptions) ([]model.ProvisioningRun, paginator.Paginator, error) {
	return f.listRunsResult, paginator.Paginator{Total: int64(len(f.listRunsResult))}, nil
}

func (f *fakeRepo) MarkRunRunning(ctx context.Context, id string) error {
	f.markedRunning = true
	return nil
}

func (f *fakeRepo) UpdateRunProgress(ctx context.Context, opt repository.UpdateRunProgressOptions) error {
	f.progressUpdates = append(f.progressUpdates, opt)
	return nil
}

func (f *fakeRepo) MarkRunCompleted(ctx context.Context, opt repository.MarkRunCompletedOptions) (model.ProvisioningRun, error) {
	f.completedOpt = &opt
	run := f.createdRun
	run.Status = model.RunStatusCompleted
	run.ReportURL = opt.ReportURL
	if len(f.progressUpdates) > 0 {
		last := f.progressUpdates[len(f.progressUpdates)-1]
		run.BudgetResource = last.BudgetResource
		run.CampaignResource = last.CampaignResource
		run.AdGroupResource = last.AdGroupResource
		run.AdsCreated = last.AdsCreated
		run.KeywordsCreated = last.KeywordsCreated
	}
	now := time.Now()
	run.CompletedAt = &now
	return run, nil
}

func (f *fakeRepo) MarkRunFailed(ctx context.Context, opt repository.MarkRunFailedOptions) (model.ProvisioningRun, error) {
	f.failedOpt = &opt
	run := f.createdRun
	run.Status = model.RunStatusFailed
	run.FailedStep = opt.FailedStep
	run.ErrorMessage = opt.ErrorMessage
	run.ReportURL = opt.ReportURL
	return run, nil
}

func (f *fakeRepo) CreateResources(ctx context.Context, opts []repository.CreateResourceOptions) ([]model.ProvisionedResource, error) {
	if f.createResourcesErr != nil {
		return nil, f.createResourcesErr
	}
	f.resourceOpts = append(f.resourceOpts, opts...)
	created := make([]model.ProvisionedResource, 0, len(opts))
	for i, opt := range opts {
		created = append(created, model.ProvisionedResource{
			ID:           fmt.Sprintf("res-%d-%d", len(f.resourceOpts), i),
			RunID:        opt.RunID,
			ResourceType: opt.ResourceType,
			ResourceName: opt.ResourceName,
			ExternalID:   opt.ExternalID,
			DisplayName:  opt.DisplayName,
		})
	}
	return created, nil
}

func (f *fakeRepo) ListResourcesByRun(ctx context.Context, runID string) ([]model.ProvisionedResource, error) {
	return f.listResources, nil
}

type fakeCache struct {
	run         *model.ProvisioningRun
	resources   []model.ProvisionedResource
	setCalled   bool
	invalidated []string
}

func (f *fakeCache) GetRunDetail(ctx context.Context, runID string) (*model.ProvisioningRun, []model.ProvisionedResource, error) {
	if f.run == nil {
		return nil, nil, repository.ErrCacheMiss
	}
	return f.run, f.resources, nil
}

func (f *fakeCache) SetRunDetail(ctx context.Context, run model.ProvisioningRun, resources []model.ProvisionedResource) error {
	f.setCalled = true
	f.run = &run
	f.resources = resources
	return nil
}

func (f *fakeCache) InvalidateRunDetail(ctx context.Context, runID string) error {
	f.invalidated = append(f.invalidated, runID)
	return nil
}

type fakeAccounts struct {
	account        model.Account
	detailErr      error
	credentialsErr error
}

func (f *fakeAccounts) Create(ctx context.Context, input account.CreateInput) (account.AccountOutput, error) {
	return account.AccountOutput{}, nil
}

func (f *fakeAccounts) Detail(ctx context.Context, customerID string) (account.AccountOutput, error) {
	if f.detailErr != nil {
		return account.AccountOutput{}, f.detailErr
	}
	return account.AccountOutput{Account: f.account}, nil
}

func (f *fakeAccounts) List(ctx context.Context, input account.ListInput) (account.ListOutput, error) {
	return account.ListOutput{}, nil
}

func (f *fakeAccounts) Credentials(ctx context.Context, customerID string) (account.Credentials, error) {
	if f.detailErr != nil {
		return account.Credentials{}, f.detailErr
	}
	if f.account.Status == model.AccountStatusSuspended {
		return account.Credentials{}, account.ErrAccountSuspended
	}
	if f.credentialsErr != nil {
		return account.Credentials{}, f.credentialsErr
	}
	return account.Credentials{
		CustomerID:     f.account.CustomerID,
		RefreshToken:   "refresh-token",
		DeveloperToken: "developer-token",
	}, nil
}

func (f *fakeAccounts) Suspend(ctx context.Context, customerID string) error  { return nil }
func (f *fakeAccounts) Activate(ctx context.Context, customerID string) error { return nil }

// fakeGoogleAds answers mutates with synthetic resource names and searches
// with rows matching whatever the mutate handed out.
type fakeGoogleAds struct {
	budgetOps    []googleads.CampaignBudgetOperation
	campaignOps  []googleads.CampaignOperation
	adGroupOps   []googleads.AdGroupOperation
	adOps        []googleads.AdGroupAdOperation
	criterionOps []googleads.AdGroupCriterionOperation
	queries      []string

	failService string // service name whose mutate should fail
}

const fakeMutateErrMsg = "backend rejected the operation"

func (f *fakeGoogleAds) MutateCampaignBudgets(ctx context.Context, customerID string, ops []googleads.CampaignBudgetOperation) (*googleads.MutateResponse, error) {
	if f.failService == "campaignBudgets" {
		return nil, errors.New(fakeMutateErrMsg)
	}
	f.budgetOps = append(f.budgetOps, ops...)
	return &googleads.MutateResponse{Results: []googleads.MutateResult{
		{ResourceName: fmt.Sprintf("customers/%s/campaignBudgets/111", customerID)},
	}}, nil
}

func (f *fakeGoogleAds) MutateCampaigns(ctx context.Context, customerID string, ops []googleads.CampaignOperation) (*googleads.MutateResponse, error) {
	if f.failService == "campaigns" {
		return nil, errors.New(fakeMutateErrMsg)
	}
	f.campaignOps = append(f.campaignOps, ops...)
	return &googleads.MutateResponse{Results: []googleads.MutateResult{
		{ResourceName: fmt.Sprintf("customers/%s/campaigns/222", customerID)},
	}}, nil
}

func (f *fakeGoogleAds) MutateAdGroups(ctx context.Context, customerID string, ops []googleads.AdGroupOperation) (*googleads.MutateResponse, error) {
	if f.failService == "adGroups" {
		return nil, errors.New(fakeMutateErrMsg)
	}
	f.adGroupOps = append(f.adGroupOps, ops...)
	return &googleads.MutateResponse{Results: []googleads.MutateResult{
		{ResourceName: fmt.Sprintf("customers/%s/adGroups/333", customerID)},
	}}, nil
}

func (f *fakeGoogleAds) MutateAdGroupAds(ctx context.Context, customerID string, ops []googleads.AdGroupAdOperation) (*googleads.MutateResponse, error) {
	if f.failService == "adGroupAds" {
		return nil, errors.New(fakeMutateErrMsg)
	}
	f.adOps = append(f.adOps, ops...)
	results := make([]googleads.MutateResult, 0, len(ops))
	for i := range ops {
		results = append(results, googleads.MutateResult{
			ResourceName: fmt.Sprintf("customers/%s/adGroupAds/333~%d", customerID, 400+i),
		})
	}
	return &googleads.MutateResponse{Results: results}, nil
}

func (f *fakeGoogleAds) MutateAdGroupCriteria(ctx context.Context, customerID string, ops []googleads.AdGroupCriterionOperation) (*googleads.MutateResponse, error) {
	if f.failService == "adGroupCriteria" {
		return nil, errors.New(fakeMutateErrMsg)
	}
	f.criterionOps = append(f.criterionOps, ops...)
	results := make([]googleads.MutateResult, 0, len(ops))
	for i := range ops {
		results = append(results, googleads.MutateResult{
			ResourceName: fmt.Sprintf("customers/%s/adGroupCriteria/333~%d", customerID, 500+i),
		})
	}
	return &googleads.MutateResponse{Results: results}, nil
}

func (f *fakeGoogleAds) Search(ctx context.Context, customerID, query string) ([]googleads.SearchRow, error) {
	f.queries = append(f.queries, query)

	switch {
	case strings.Contains(query, "FROM campaign_budget"):
		return []googleads.SearchRow{{CampaignBudget: &googleads.CampaignBudget{
			ResourceName: fmt.Sprintf("customers/%s/campaignBudgets/111", customerID),
			ID:           111,
			Name:         "Interplanetary Cruise Budget",
		}}}, nil
	case strings.Contains(query, "FROM ad_group_criterion"):
		rows := make([]googleads.SearchRow, 0, len(keywordsToAdd))
		for i, text := range keywordsToAdd {
			rows = append(rows, googleads.SearchRow{AdGroupCriterion: &googleads.AdGroupCriterion{
				ResourceName: fmt.Sprintf("customers/%s/adGroupCriteria/333~%d", customerID, 500+i),
				CriterionID:  int64(500 + i),
				Keyword:      &googleads.KeywordInfo{Text: text, MatchType: googleads.MatchTypeExact},
			}})
		}
		return rows, nil
	case strings.Contains(query, "FROM ad_group_ad"):
		rows := make([]googleads.SearchRow, 0, numberOfAds)
		for i := 0; i < numberOfAds; i++ {
			rows = append(rows, googleads.SearchRow{AdGroupAd: &googleads.AdGroupAd{
				Ad: &googleads.Ad{
					ResourceName:   fmt.Sprintf("customers/%s/adGroupAds/333~%d", customerID, 400+i),
					ID:             int64(400 + i),
					ExpandedTextAd: &googleads.ExpandedTextAdInfo{HeadlinePart1: fmt.Sprintf("Cruise to Mars #%d", i), HeadlinePart2: adHeadline2},
				},
			}})
		}
		return rows, nil
	case strings.Contains(query, "FROM ad_group"):
		return []googleads.SearchRow{{AdGroup: &googleads.AdGroup{
			ResourceName: fmt.Sprintf("customers/%s/adGroups/333", customerID),
			ID:           333,
			Name:         "Earth to Mars Cruises",
		}}}, nil
	case strings.Contains(query, "FROM campaign"):
		return []googleads.SearchRow{{Campaign: &googleads.Campaign{
			ResourceName: fmt.Sprintf("customers/%s/campaigns/222", customerID),
			ID:           222,
			Name:         "Interplanetary Cruise",
		}}}, nil
	}
	return nil, nil
}

type fakeAdWords struct {
	campaignOps  []adwords.CampaignOperation
	adGroupOps   []adwords.AdGroupOperation
	adOps        []adwords.AdGroupAdOperation
	criterionOps []adwords.AdGroupCriterionOperation

	failService string
}

func (f *fakeAdWords) MutateCampaigns(ctx context.Context, ops []adwords.CampaignOperation) ([]adwords.Entity, error) {
	if f.failService == "CampaignService" {
		return nil, errors.New(fakeMutateErrMsg)
	}
	f.campaignOps = append(f.campaignOps, ops...)
	return []adwords.Entity{{ID: 9222, Name: ops[0].Operand.Name}}, nil
}

func (f *fakeAdWords) MutateAdGroups(ctx context.Context, ops []adwords.AdGroupOperation) ([]adwords.Entity, error) {
	if f.failService == "AdGroupService" {
		return nil, errors.New(fakeMutateErrMsg)
	}
	f.adGroupOps = append(f.adGroupOps, ops...)
	return []adwords.Entity{{ID: 9333, Name: ops[0].Operand.Name}}, nil
}

func (f *fakeAdWords) MutateAdGroupAds(ctx context.Context, ops []adwords.AdGroupAdOperation) ([]adwords.Entity, error) {
	if f.failService == "AdGroupAdService" {
		return nil, errors.New(fakeMutateErrMsg)
	}
	f.adOps = append(f.adOps, ops...)
	entities := make([]adwords.Entity, 0, len(ops))
	for i, op := range ops {
		entities = append(entities, adwords.Entity{
			AdGroupID: op.Operand.AdGroupID,
			Ad: &adwords.AdEntity{
				ID:            int64(9400 + i),
				HeadlinePart1: op.Operand.Ad.HeadlinePart1,
				HeadlinePart2: op.Operand.Ad.HeadlinePart2,
			},
		})
	}
	return entities, nil
}

func (f *fakeAdWords) MutateAdGroupCriteria(ctx context.Context, ops []adwords.AdGroupCriterionOperation) ([]adwords.Entity, error) {
	if f.failService == "AdGroupCriterionService" {
		return nil, errors.New(fakeMutateErrMsg)
	}
	f.criterionOps = append(f.criterionOps, ops...)
	entities := make([]adwords.Entity, 0, len(ops))
	for i, op := range ops {
		entities = append(entities, adwords.Entity{
			AdGroupID: op.Operand.AdGroupID,
			Criterion: &adwords.KeywordEntity{
				ID:        int64(9500 + i),
				Text:      op.Operand.Criterion.Text,
				MatchType: op.Operand.Criterion.MatchType,
			},
		})
	}
	return entities, nil
}

type fakeMinIO struct {
	uploads   []*minio.UploadRequest
	uploadErr error
	url       string
}

func (f *fakeMinIO) Connect(ctx context.Context) error                         { return nil }
func (f *fakeMinIO) HealthCheck(ctx context.Context) error                     { return nil }
func (f *fakeMinIO) EnsureBucket(ctx context.Context, bucketName string) error { return nil }

func (f *fakeMinIO) UploadJSON(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads = append(f.uploads, req)
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: int64(len(req.Data))}, nil
}

func (f *fakeMinIO) GetPresignedDownloadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	if f.url == "" {
		return "", errors.New("no url")
	}
	return f.url, nil
}

func (f *fakeMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error { return nil }
func (f *fakeMinIO) Close() error                                                        { return nil }

type fakeProducer struct {
	completed []provisioning.RunCompletedEvent
	failed    []provisioning.RunFailedEvent
}

func (f *fakeProducer) PublishRunCompleted(ctx context.Context, event provisioning.RunCompletedEvent) error {
	f.completed = append(f.completed, event)
	return nil
}

func (f *fakeProducer) PublishRunFailed(ctx context.Context, event provisioning.RunFailedEvent) error {
	f.failed = append(f.failed, event)
	return nil
}

type testDeps struct {
	repo     *fakeRepo
	cache    *fakeCache
	accounts *fakeAccounts
	gads     *fakeGoogleAds
	adwords  *fakeAdWords
	minio    *fakeMinIO
	producer *fakeProducer
}

func newTestUseCase() (provisioning.UseCase, *testDeps) {
	deps := &testDeps{
		repo:     &fakeRepo{},
		cache:    &fakeCache{},
		accounts: &fakeAccounts{account: model.Account{CustomerID: "1234567890", Status: model.AccountStatusActive}},
		gads:     &fakeGoogleAds{},
		adwords:  &fakeAdWords{},
		minio:    &fakeMinIO{url: "https://storage.local/report"},
		producer: &fakeProducer{},
	}
	uc := New(
		noopLogger{},
		Config{ReportBucket: "campaign-reports", ReportExpiry: time.Hour},
		deps.repo,
		deps.cache,
		deps.accounts,
		deps.gads,
		deps.adwords,
		deps.minio,
		deps.producer,
	)
	return uc, deps
}

// ============================================
// Tests
// ============================================

func TestProvisionValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing customer id", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.Provision(ctx, provisioning.ProvisionInput{})
		if err != provisioning.ErrCustomerRequired {
			t.Fatalf("expected ErrCustomerRequired, got %v", err)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.Provision(ctx, provisioning.ProvisionInput{CustomerID: "1234567890", Mode: "LEGACY"})
		if err != provisioning.ErrInvalidMode {
			t.Fatalf("expected ErrInvalidMode, got %v", err)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		uc, deps := newTestUseCase()
		deps.accounts.detailErr = account.ErrAccountNotFound
		_, err := uc.Provision(ctx, provisioning.ProvisionInput{CustomerID: "1234567890"})
		if err != provisioning.ErrAccountNotFound {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("suspended account", func(t *testing.T) {
		uc, deps := newTestUseCase()
		deps.accounts.account.Status = model.AccountStatusSuspended
		_, err := uc.Provision(ctx, provisioning.ProvisionInput{CustomerID: "1234567890"})
		if err != provisioning.ErrAccountSuspended {
			t.Fatalf("expected ErrAccountSuspended, got %v", err)
		}
		if deps.repo.markedRunning {
			t.Error("run should not start for a suspended account")
		}
	})

	t.Run("undecryptable credentials", func(t *testing.T) {
		uc, deps := newTestUseCase()
		credsErr := errors.New("cipher: message authentication failed")
		deps.accounts.credentialsErr = credsErr
		_, err := uc.Provision(ctx, provisioning.ProvisionInput{CustomerID: "1234567890"})
		if err != credsErr {
			t.Fatalf("expected the credential error, got %v", err)
		}
		if deps.repo.markedRunning {
			t.Error("run should not start when credentials cannot be resolved")
		}
	})

	t.Run("lowercase mode accepted", func(t *testing.T) {
		uc, deps := newTestUseCase()
		out, err := uc.Provision(ctx, provisioning.ProvisionInput{CustomerID: "1234567890", Mode: "hybrid"})
		if err != nil {
			t.Fatalf("Provision returned error: %v", err)
		}
		if out.Run.Mode != model.RunModeHybrid {
			t.Errorf("run mode: got %s, want %s", out.Run.Mode, model.RunModeHybrid)
		}
		if len(deps.adwords.campaignOps) != 1 {
			t.Errorf("lowercase hybrid should route the campaign through the legacy API")
		}
	})
}

func TestProvisionNativeSuccess(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase()

	out, err := uc.Provision(ctx, provisioning.ProvisionInput{CustomerID: "1234567890"})
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}

	if out.Run.Status != model.RunStatusCompleted {
		t.Errorf("run status: got %s, want %s", out.Run.Status, model.RunStatusCompleted)
	}
	if out.Run.Mode != model.RunModeNative {
		t.Errorf("run mode: got %s, want %s (default)", out.Run.Mode, model.RunModeNative)
	}
	if !deps.repo.markedRunning {
		t.Error("run was never marked running")
	}

	// Budget payload
	if len(deps.gads.budgetOps) != 1 {
		t.Fatalf("budget ops: got %d, want 1", len(deps.gads.budgetOps))
	}
	budget := deps.gads.budgetOps[0].Create
	if budget.AmountMicros != 500000 {
		t.Errorf("budget amount: got %d, want 500000", budget.AmountMicros)
	}
	if budget.DeliveryMethod != googleads.BudgetDeliveryStandard {
		t.Errorf("budget delivery: got %s, want %s", budget.DeliveryMethod, googleads.BudgetDeliveryStandard)
	}
	if !strings.HasPrefix(budget.Name, "Interplanetary Cruise Budget #") {
		t.Errorf("budget name: got %q", budget.Name)
	}

	// Campaign payload chains the budget resource name
	if len(deps.gads.campaignOps) != 1 {
		t.Fatalf("campaign ops: got %d, want 1", len(deps.gads.campaignOps))
	}
	campaign := deps.gads.campaignOps[0].Create
	if campaign.CampaignBudget != "customers/1234567890/campaignBudgets/111" {
		t.Errorf("campaign budget ref: got %q", campaign.CampaignBudget)
	}
	if campaign.Status != googleads.StatusPaused {
		t.Errorf("campaign status: got %s, want PAUSED", campaign.Status)
	}
	if campaign.ManualCpc == nil || !campaign.ManualCpc.EnhancedCpcEnabled {
		t.Error("campaign should use manual CPC with enhanced CPC enabled")
	}
	if campaign.NetworkSettings == nil ||
		!campaign.NetworkSettings.TargetGoogleSearch ||
		!campaign.NetworkSettings.TargetSearchNetwork ||
		campaign.NetworkSettings.TargetContentNetwork ||
		campaign.NetworkSettings.TargetPartnerSearchNetwork {
		t.Errorf("campaign network settings: got %+v", campaign.NetworkSettings)
	}

	// Ad group chains the campaign resource name
	if len(deps.gads.adGroupOps) != 1 {
		t.Fatalf("ad group ops: got %d, want 1", len(deps.gads.adGroupOps))
	}
	adGroup := deps.gads.adGroupOps[0].Create
	if adGroup.Campaign != "customers/1234567890/campaigns/222" {
		t.Errorf("ad group campaign ref: got %q", adGroup.Campaign)
	}
	if adGroup.CpcBidMicros != 10000000 {
		t.Errorf("ad group cpc bid: got %d, want 10000000", adGroup.CpcBidMicros)
	}
	if adGroup.Type != googleads.AdGroupTypeSearchStandard {
		t.Errorf("ad group type: got %s", adGroup.Type)
	}

	// Five ads, one batched call, all paused
	if len(deps.gads.adOps) != 5 {
		t.Fatalf("ad ops: got %d, want 5", len(deps.gads.adOps))
	}
	for i, op := range deps.gads.adOps {
		if op.Create.Status != googleads.StatusPaused {
			t.Errorf("ad %d status: got %s, want PAUSED", i, op.Create.Status)
		}
		if op.Create.AdGroup != "customers/1234567890/adGroups/333" {
			t.Errorf("ad %d ad group ref: got %q", i, op.Create.AdGroup)
		}
		if got := op.Create.Ad.FinalUrls; len(got) != 1 || got[0] != "http://www.example.com" {
			t.Errorf("ad %d final urls: got %v", i, got)
		}
	}

	// Two exact match keywords
	if len(deps.gads.criterionOps) != 2 {
		t.Fatalf("criterion ops: got %d, want 2", len(deps.gads.criterionOps))
	}
	for i, op := range deps.gads.criterionOps {
		if op.Create.Keyword.Text != keywordsToAdd[i] {
			t.Errorf("keyword %d text: got %q, want %q", i, op.Create.Keyword.Text, keywordsToAdd[i])
		}
		if op.Create.Keyword.MatchType != googleads.MatchTypeExact {
			t.Errorf("keyword %d match type: got %s, want EXACT", i, op.Create.Keyword.MatchType)
		}
	}

	// Run record
	if out.Run.AdsCreated != 5 {
		t.Errorf("ads created: got %d, want 5", out.Run.AdsCreated)
	}
	if out.Run.KeywordsCreated != 2 {
		t.Errorf("keywords created: got %d, want 2", out.Run.KeywordsCreated)
	}
	if len(out.Resources) != 10 {
		t.Errorf("resources: got %d, want 10 (budget + campaign + ad group + 5 ads + 2 keywords)", len(out.Resources))
	}
	if len(deps.repo.progressUpdates) != 5 {
		t.Errorf("progress updates: got %d, want 5 (one per step)", len(deps.repo.progressUpdates))
	}

	// Report and events
	if len(deps.minio.uploads) != 1 {
		t.Fatalf("report uploads: got %d, want 1", len(deps.minio.uploads))
	}
	upload := deps.minio.uploads[0]
	if upload.BucketName != "campaign-reports" {
		t.Errorf("report bucket: got %s", upload.BucketName)
	}
	wantObject := fmt.Sprintf("runs/%s/report.json", out.Run.ID)
	if upload.ObjectName != wantObject {
		t.Errorf("report object: got %s, want %s", upload.ObjectName, wantObject)
	}
	if out.Run.ReportURL != "https://storage.local/report" {
		t.Errorf("report url: got %s", out.Run.ReportURL)
	}
	if len(deps.producer.completed) != 1 {
		t.Fatalf("completion events: got %d, want 1", len(deps.producer.completed))
	}
	if deps.producer.completed[0].AdsCreated != 5 || deps.producer.completed[0].KeywordsCreated != 2 {
		t.Errorf("completion event counts: got %+v", deps.producer.completed[0])
	}
	if len(deps.producer.failed) != 0 {
		t.Errorf("failure events published for a successful run: %d", len(deps.producer.failed))
	}
	if len(deps.cache.invalidated) != 1 {
		t.Errorf("cache invalidations: got %d, want 1", len(deps.cache.invalidated))
	}
}

func TestProvisionHybridSuccess(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase()

	out, err := uc.Provision(ctx, provisioning.ProvisionInput{
		CustomerID: "1234567890",
		Mode:       model.RunModeHybrid,
	})
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}

	// Budget still goes through the new API
	if len(deps.gads.budgetOps) != 1 {
		t.Fatalf("budget ops via new API: got %d, want 1", len(deps.gads.budgetOps))
	}
	if len(deps.gads.campaignOps) != 0 {
		t.Errorf("hybrid mode should not create campaigns via the new API")
	}

	// Legacy campaign references the budget by numeric id
	if len(deps.adwords.campaignOps) != 1 {
		t.Fatalf("legacy campaign ops: got %d, want 1", len(deps.adwords.campaignOps))
	}
	legacyCampaign := deps.adwords.campaignOps[0].Operand
	if legacyCampaign.Budget.BudgetID != 111 {
		t.Errorf("legacy budget ref: got %d, want 111", legacyCampaign.Budget.BudgetID)
	}
	if legacyCampaign.BiddingStrategyConfiguration.BiddingStrategyType != adwords.BiddingStrategyManualCpc {
		t.Errorf("legacy bidding strategy: got %s", legacyCampaign.BiddingStrategyConfiguration.BiddingStrategyType)
	}

	// Legacy ad group carries a CpcBid and the optimize rotation mode
	if len(deps.adwords.adGroupOps) != 1 {
		t.Fatalf("legacy ad group ops: got %d, want 1", len(deps.adwords.adGroupOps))
	}
	legacyAdGroup := deps.adwords.adGroupOps[0].Operand
	if legacyAdGroup.CampaignID != 9222 {
		t.Errorf("legacy campaign id chain: got %d, want 9222", legacyAdGroup.CampaignID)
	}
	bids := legacyAdGroup.BiddingStrategyConfiguration.Bids
	if len(bids) != 1 || bids[0].XSIType != "CpcBid" || bids[0].Bid.MicroAmount != 10000000 {
		t.Errorf("legacy ad group bids: got %+v", bids)
	}
	if legacyAdGroup.AdGroupAdRotationMode != adwords.AdRotationModeOptimize {
		t.Errorf("legacy rotation mode: got %s", legacyAdGroup.AdGroupAdRotationMode)
	}

	// Five legacy ads with the extended headline and description
	if len(deps.adwords.adOps) != 5 {
		t.Fatalf("legacy ad ops: got %d, want 5", len(deps.adwords.adOps))
	}
	for i, op := range deps.adwords.adOps {
		ad := op.Operand.Ad
		if ad.HeadlinePart3 != "For Your Loved Ones" {
			t.Errorf("legacy ad %d headline 3: got %q", i, ad.HeadlinePart3)
		}
		if ad.Description2 != "Discount ends soon" {
			t.Errorf("legacy ad %d description 2: got %q", i, ad.Description2)
		}
		if op.Operand.AdGroupID != 9333 {
			t.Errorf("legacy ad %d ad group id: got %d, want 9333", i, op.Operand.AdGroupID)
		}
	}

	// Broad match paused keywords with escaped final URLs
	if len(deps.adwords.criterionOps) != 2 {
		t.Fatalf("legacy criterion ops: got %d, want 2", len(deps.adwords.criterionOps))
	}
	first := deps.adwords.criterionOps[0].Operand
	if first.Criterion.MatchType != adwords.MatchTypeBroad {
		t.Errorf("legacy keyword match type: got %s, want BROAD", first.Criterion.MatchType)
	}
	if first.UserStatus != adwords.StatusPaused {
		t.Errorf("legacy keyword user status: got %s, want PAUSED", first.UserStatus)
	}
	wantURL := "http://www.example.com/mars/cruise/?kw=mars+cruise"
	if len(first.FinalUrls) != 1 || first.FinalUrls[0] != wantURL {
		t.Errorf("legacy keyword final url: got %v, want %s", first.FinalUrls, wantURL)
	}

	// Synthesized resource names keep the run record uniform
	if out.Run.CampaignResource != "customers/1234567890/campaigns/9222" {
		t.Errorf("campaign resource: got %s", out.Run.CampaignResource)
	}
	if out.Run.AdGroupResource != "customers/1234567890/adGroups/9333" {
		t.Errorf("ad group resource: got %s", out.Run.AdGroupResource)
	}
	if out.Run.Status != model.RunStatusCompleted {
		t.Errorf("run status: got %s", out.Run.Status)
	}
}

func TestProvisionStepFailures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		failService   string
		wantErr       error
		wantStep      string
		wantResources int
	}{
		{"budget fails", "campaignBudgets", provisioning.ErrBudgetFailed, model.StepBudget, 0},
		{"campaign fails", "campaigns", provisioning.ErrCampaignFailed, model.StepCampaign, 1},
		{"ad group fails", "adGroups", provisioning.ErrAdGroupFailed, model.StepAdGroup, 2},
		{"ads fail", "adGroupAds", provisioning.ErrAdsFailed, model.StepAds, 3},
		{"keywords fail", "adGroupCriteria", provisioning.ErrKeywordsFailed, model.StepKeywords, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUseCase()
			deps.gads.failService = tt.failService

			out, err := uc.Provision(ctx, provisioning.ProvisionInput{CustomerID: "1234567890"})
			if err != tt.wantErr {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			if out.Run.Status != model.RunStatusFailed {
				t.Errorf("run status: got %s, want FAILED", out.Run.Status)
			}
			if out.Run.FailedStep != tt.wantStep {
				t.Errorf("failed step: got %s, want %s", out.Run.FailedStep, tt.wantStep)
			}
			if deps.repo.failedOpt == nil {
				t.Fatal("run was never marked failed")
			}
			if deps.repo.failedOpt.ErrorMessage != fakeMutateErrMsg {
				t.Errorf("error message: got %q", deps.repo.failedOpt.ErrorMessage)
			}
			// Failed runs still get a report, and its URL is stored on the run.
			if deps.repo.failedOpt.ReportURL != "https://storage.local/report" {
				t.Errorf("failed run report url: got %q", deps.repo.failedOpt.ReportURL)
			}
			if out.Run.ReportURL != "https://storage.local/report" {
				t.Errorf("run report url: got %q", out.Run.ReportURL)
			}
			// Resources created before the failure stay recorded, no rollback.
			if len(out.Resources) != tt.wantResources {
				t.Errorf("resources: got %d, want %d", len(out.Resources), tt.wantResources)
			}
			if len(deps.producer.failed) != 1 {
				t.Fatalf("failure events: got %d, want 1", len(deps.producer.failed))
			}
			if deps.producer.failed[0].FailedStep != tt.wantStep {
				t.Errorf("failure event step: got %s", deps.producer.failed[0].FailedStep)
			}
			if len(deps.producer.completed) != 0 {
				t.Errorf("completion event published for a failed run")
			}
		})
	}
}

func TestProvisionResourcePersistenceBestEffort(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase()
	deps.repo.createResourcesErr = errors.New("db down")

	out, err := uc.Provision(ctx, provisioning.ProvisionInput{CustomerID: "1234567890"})
	if err != nil {
		t.Fatalf("persistence failure should not abort the run: %v", err)
	}
	if out.Run.Status != model.RunStatusCompleted {
		t.Errorf("run status: got %s, want COMPLETED", out.Run.Status)
	}
	if len(out.Resources) != 0 {
		t.Errorf("resources: got %d, want 0 when persistence is down", len(out.Resources))
	}
}

func TestProvisionReportUploadBestEffort(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestUseCase()
	deps.minio.uploadErr = errors.New("storage down")

	out, err := uc.Provision(ctx, provisioning.ProvisionInput{CustomerID: "1234567890"})
	if err != nil {
		t.Fatalf("report upload failure should not abort the run: %v", err)
	}
	if out.Run.ReportURL != "" {
		t.Errorf("report url should be empty when upload fails, got %s", out.Run.ReportURL)
	}
	if out.Run.Status != model.RunStatusCompleted {
		t.Errorf("run status: got %s, want COMPLETED", out.Run.Status)
	}
}
