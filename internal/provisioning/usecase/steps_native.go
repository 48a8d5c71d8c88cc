package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"campaign-srv/internal/provisioning"
	"campaign-srv/pkg/googleads"
)

// createBudget creates the shared campaign budget and fetches it back to
// obtain its numeric id. The budget is created through the new API in every
// run mode.
func (uc *implUseCase) createBudget(ctx context.Context, customerID string) (provisioning.BudgetResult, error) {
	op := googleads.CampaignBudgetOperation{
		Create: &googleads.CampaignBudget{
			Name:           fmt.Sprintf(budgetNameFormat, uuid.NewString()),
			DeliveryMethod: googleads.BudgetDeliveryStandard,
			AmountMicros:   budgetAmountMicros,
		},
	}

	resp, err := uc.gads.MutateCampaignBudgets(ctx, customerID, []googleads.CampaignBudgetOperation{op})
	if err != nil {
		return provisioning.BudgetResult{}, err
	}
	resourceName := resp.Results[0].ResourceName

	query := fmt.Sprintf(
		"SELECT campaign_budget.id, campaign_budget.name, campaign_budget.resource_name "+
			"FROM campaign_budget WHERE campaign_budget.resource_name = '%s'", resourceName)
	rows, err := uc.gads.Search(ctx, customerID, query)
	if err != nil {
		return provisioning.BudgetResult{}, err
	}
	if len(rows) == 0 || rows[0].CampaignBudget == nil {
		return provisioning.BudgetResult{}, provisioning.ErrResourceNotFetched
	}

	budget := rows[0].CampaignBudget
	return provisioning.BudgetResult{
		ResourceName: budget.ResourceName,
		ID:           budget.ID,
		Name:         budget.Name,
	}, nil
}

// createCampaign creates a paused search campaign on the new budget.
func (uc *implUseCase) createCampaign(ctx context.Context, customerID, budgetResource string) (provisioning.CampaignResult, error) {
	now := time.Now()
	op := googleads.CampaignOperation{
		Create: &googleads.Campaign{
			Name:                   fmt.Sprintf(campaignNameFormat, uuid.NewString()),
			Status:                 googleads.StatusPaused,
			AdvertisingChannelType: googleads.ChannelTypeSearch,
			ManualCpc:              &googleads.ManualCpc{EnhancedCpcEnabled: true},
			CampaignBudget:         budgetResource,
			NetworkSettings: &googleads.NetworkSettings{
				TargetGoogleSearch:         true,
				TargetSearchNetwork:        true,
				TargetContentNetwork:       false,
				TargetPartnerSearchNetwork: false,
			},
			StartDate: now.AddDate(0, 0, 1).Format(campaignDateFormat),
			EndDate:   now.AddDate(1, 0, 0).Format(campaignDateFormat),
		},
	}

	resp, err := uc.gads.MutateCampaigns(ctx, customerID, []googleads.CampaignOperation{op})
	if err != nil {
		return provisioning.CampaignResult{}, err
	}
	resourceName := resp.Results[0].ResourceName

	query := fmt.Sprintf(
		"SELECT campaign.id, campaign.name, campaign.resource_name "+
			"FROM campaign WHERE campaign.resource_name = '%s'", resourceName)
	rows, err := uc.gads.Search(ctx, customerID, query)
	if err != nil {
		return provisioning.CampaignResult{}, err
	}
	if len(rows) == 0 || rows[0].Campaign == nil {
		return provisioning.CampaignResult{}, provisioning.ErrResourceNotFetched
	}

	campaign := rows[0].Campaign
	return provisioning.CampaignResult{
		ResourceName: campaign.ResourceName,
		ID:           campaign.ID,
		Name:         campaign.Name,
	}, nil
}

// createAdGroup creates an enabled search ad group in the campaign.
func (uc *implUseCase) createAdGroup(ctx context.Context, customerID, campaignResource string) (provisioning.AdGroupResult, error) {
	op := googleads.AdGroupOperation{
		Create: &googleads.AdGroup{
			Name:         fmt.Sprintf(adGroupNameFormat, uuid.NewString()),
			Campaign:     campaignResource,
			Status:       googleads.StatusEnabled,
			Type:         googleads.AdGroupTypeSearchStandard,
			CpcBidMicros: adGroupCpcBidMicros,
		},
	}

	resp, err := uc.gads.MutateAdGroups(ctx, customerID, []googleads.AdGroupOperation{op})
	if err != nil {
		return provisioning.AdGroupResult{}, err
	}
	resourceName := resp.Results[0].ResourceName

	query := fmt.Sprintf(
		"SELECT ad_group.id, ad_group.name, ad_group.resource_name "+
			"FROM ad_group WHERE ad_group.resource_name = '%s'", resourceName)
	rows, err := uc.gads.Search(ctx, customerID, query)
	if err != nil {
		return provisioning.AdGroupResult{}, err
	}
	if len(rows) == 0 || rows[0].AdGroup == nil {
		return provisioning.AdGroupResult{}, provisioning.ErrResourceNotFetched
	}

	adGroup := rows[0].AdGroup
	return provisioning.AdGroupResult{
		ResourceName: adGroup.ResourceName,
		ID:           adGroup.ID,
		Name:         adGroup.Name,
	}, nil
}

// createAds creates the paused expanded text ads in one batched call, then
// fetches every ad in the ad group.
func (uc *implUseCase) createAds(ctx context.Context, customerID, adGroupResource string) ([]provisioning.AdResult, error) {
	ops := make([]googleads.AdGroupAdOperation, 0, numberOfAds)
	for i := 0; i < numberOfAds; i++ {
		ops = append(ops, googleads.AdGroupAdOperation{
			Create: &googleads.AdGroupAd{
				AdGroup: adGroupResource,
				Status:  googleads.StatusPaused,
				Ad: &googleads.Ad{
					ExpandedTextAd: &googleads.ExpandedTextAdInfo{
						HeadlinePart1: fmt.Sprintf(adHeadline1Format, uuid.NewString()[:4]),
						HeadlinePart2: adHeadline2,
						Description:   adDescription,
					},
					FinalUrls: []string{adFinalURL},
				},
			},
		})
	}

	if _, err := uc.gads.MutateAdGroupAds(ctx, customerID, ops); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT ad_group_ad.ad.id, ad_group_ad.ad.expanded_text_ad.headline_part1, "+
			"ad_group_ad.ad.expanded_text_ad.headline_part2, ad_group_ad.ad.resource_name "+
			"FROM ad_group_ad WHERE ad_group_ad.ad_group = '%s'", adGroupResource)
	rows, err := uc.gads.Search(ctx, customerID, query)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, provisioning.ErrResourceNotFetched
	}

	ads := make([]provisioning.AdResult, 0, len(rows))
	for _, row := range rows {
		if row.AdGroupAd == nil || row.AdGroupAd.Ad == nil {
			continue
		}
		result := provisioning.AdResult{
			ResourceName: row.AdGroupAd.Ad.ResourceName,
			ID:           row.AdGroupAd.Ad.ID,
		}
		if eta := row.AdGroupAd.Ad.ExpandedTextAd; eta != nil {
			result.HeadlinePart1 = eta.HeadlinePart1
			result.HeadlinePart2 = eta.HeadlinePart2
		}
		ads = append(ads, result)
	}

	return ads, nil
}

// createKeywords creates the exact match keywords in one batched call, then
// fetches them back by resource name.
func (uc *implUseCase) createKeywords(ctx context.Context, customerID, adGroupResource string) ([]provisioning.KeywordResult, error) {
	ops := make([]googleads.AdGroupCriterionOperation, 0, len(keywordsToAdd))
	for _, text := range keywordsToAdd {
		ops = append(ops, googleads.AdGroupCriterionOperation{
			Create: &googleads.AdGroupCriterion{
				AdGroup: adGroupResource,
				Status:  googleads.StatusEnabled,
				Keyword: &googleads.KeywordInfo{
					Text:      text,
					MatchType: googleads.MatchTypeExact,
				},
			},
		})
	}

	resp, err := uc.gads.MutateAdGroupCriteria(ctx, customerID, ops)
	if err != nil {
		return nil, err
	}

	quoted := make([]string, 0, len(resp.Results))
	for _, res := range resp.Results {
		quoted = append(quoted, fmt.Sprintf("'%s'", res.ResourceName))
	}

	query := fmt.Sprintf(
		"SELECT ad_group.id, ad_group_criterion.type, ad_group_criterion.criterion_id, "+
			"ad_group_criterion.keyword.text, ad_group_criterion.keyword.match_type, "+
			"ad_group_criterion.resource_name "+
			"FROM ad_group_criterion "+
			"WHERE ad_group_criterion.type = 'KEYWORD' AND ad_group.status = 'ENABLED' "+
			"AND ad_group_criterion.status IN ('ENABLED', 'PAUSED') "+
			"AND ad_group_criterion.resource_name IN (%s)", strings.Join(quoted, ", "))
	rows, err := uc.gads.Search(ctx, customerID, query)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, provisioning.ErrResourceNotFetched
	}

	keywords := make([]provisioning.KeywordResult, 0, len(rows))
	for _, row := range rows {
		if row.AdGroupCriterion == nil {
			continue
		}
		result := provisioning.KeywordResult{
			ResourceName: row.AdGroupCriterion.ResourceName,
			ID:           row.AdGroupCriterion.CriterionID,
		}
		if kw := row.AdGroupCriterion.Keyword; kw != nil {
			result.Text = kw.Text
			result.MatchType = kw.MatchType
		}
		keywords = append(keywords, result)
	}

	return keywords, nil
}
