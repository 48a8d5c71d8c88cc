package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"campaign-srv/internal/provisioning"
	"campaign-srv/pkg/adwords"
)

// Hybrid runs create the budget through the new API and everything below it
// through the legacy SOAP API. Legacy entities have no resource names, so one
// is synthesized from the numeric id to keep the run record uniform.

func legacyResourceName(customerID, collection string, id int64) string {
	return fmt.Sprintf("customers/%s/%s/%d", customerID, collection, id)
}

// createCampaignLegacy creates a paused search campaign referencing the
// budget by its numeric id.
func (uc *implUseCase) createCampaignLegacy(ctx context.Context, customerID string, budgetID int64) (provisioning.CampaignResult, error) {
	now := time.Now()
	op := adwords.CampaignOperation{
		Operator: adwords.OperatorAdd,
		Operand: adwords.CampaignOperand{
			Name:                   fmt.Sprintf(campaignNameFormat, uuid.NewString()),
			Status:                 adwords.StatusPaused,
			AdvertisingChannelType: adwords.ChannelTypeSearch,
			StartDate:              now.AddDate(0, 0, 1).Format(campaignDateFormat),
			EndDate:                now.AddDate(1, 0, 0).Format(campaignDateFormat),
			BiddingStrategyConfiguration: adwords.BiddingStrategyConfiguration{
				BiddingStrategyType: adwords.BiddingStrategyManualCpc,
			},
			Budget: adwords.BudgetRef{BudgetID: budgetID},
			NetworkSetting: adwords.NetworkSetting{
				TargetGoogleSearch:  true,
				TargetSearchNetwork: true,
			},
		},
	}

	entities, err := uc.adwords.MutateCampaigns(ctx, []adwords.CampaignOperation{op})
	if err != nil {
		return provisioning.CampaignResult{}, err
	}

	campaign := entities[0]
	return provisioning.CampaignResult{
		ResourceName: legacyResourceName(customerID, "campaigns", campaign.ID),
		ID:           campaign.ID,
		Name:         campaign.Name,
	}, nil
}

// createAdGroupLegacy creates an enabled ad group with a manual CPC bid.
func (uc *implUseCase) createAdGroupLegacy(ctx context.Context, customerID string, campaignID int64) (provisioning.AdGroupResult, error) {
	op := adwords.AdGroupOperation{
		Operator: adwords.OperatorAdd,
		Operand: adwords.AdGroupOperand{
			CampaignID: campaignID,
			Name:       fmt.Sprintf(adGroupNameFormatLegacy, uuid.NewString()),
			Status:     adwords.StatusEnabled,
			BiddingStrategyConfiguration: adwords.BiddingStrategyConfiguration{
				Bids: []adwords.Bid{{
					XSIType: "CpcBid",
					Bid:     adwords.Money{MicroAmount: adGroupCpcBidMicros},
				}},
			},
			AdGroupAdRotationMode: adwords.AdRotationModeOptimize,
		},
	}

	entities, err := uc.adwords.MutateAdGroups(ctx, []adwords.AdGroupOperation{op})
	if err != nil {
		return provisioning.AdGroupResult{}, err
	}

	adGroup := entities[0]
	return provisioning.AdGroupResult{
		ResourceName: legacyResourceName(customerID, "adGroups", adGroup.ID),
		ID:           adGroup.ID,
		Name:         adGroup.Name,
	}, nil
}

// createAdsLegacy creates the paused expanded text ads in one batched call.
func (uc *implUseCase) createAdsLegacy(ctx context.Context, customerID string, adGroupID int64) ([]provisioning.AdResult, error) {
	ops := make([]adwords.AdGroupAdOperation, 0, numberOfAds)
	for i := 0; i < numberOfAds; i++ {
		ops = append(ops, adwords.AdGroupAdOperation{
			Operator: adwords.OperatorAdd,
			Operand: adwords.AdGroupAdOperand{
				XSIType:   "AdGroupAd",
				AdGroupID: adGroupID,
				Status:    adwords.StatusPaused,
				Ad: adwords.ExpandedTextAd{
					XSIType:       "ExpandedTextAd",
					HeadlinePart1: fmt.Sprintf(adHeadline1FormatLegacy, uuid.NewString()[:8]),
					HeadlinePart2: adHeadline2,
					HeadlinePart3: adHeadline3Legacy,
					Description:   adDescription,
					Description2:  adDescription2Legacy,
					FinalUrls:     []string{adFinalURLLegacy},
				},
			},
		})
	}

	entities, err := uc.adwords.MutateAdGroupAds(ctx, ops)
	if err != nil {
		return nil, err
	}

	ads := make([]provisioning.AdResult, 0, len(entities))
	for _, entity := range entities {
		if entity.Ad == nil {
			continue
		}
		ads = append(ads, provisioning.AdResult{
			ResourceName:  legacyResourceName(customerID, "adGroupAds", entity.Ad.ID),
			ID:            entity.Ad.ID,
			HeadlinePart1: entity.Ad.HeadlinePart1,
			HeadlinePart2: entity.Ad.HeadlinePart2,
		})
	}
	if len(ads) == 0 {
		return nil, provisioning.ErrResourceNotFetched
	}

	return ads, nil
}

// createKeywordsLegacy creates broad match keyword criteria, paused, each
// with a keyword-specific final URL.
func (uc *implUseCase) createKeywordsLegacy(ctx context.Context, customerID string, adGroupID int64) ([]provisioning.KeywordResult, error) {
	ops := make([]adwords.AdGroupCriterionOperation, 0, len(keywordsToAdd))
	for _, text := range keywordsToAdd {
		ops = append(ops, adwords.AdGroupCriterionOperation{
			Operator: adwords.OperatorAdd,
			Operand: adwords.AdGroupCriterionOperand{
				XSIType:   "BiddableAdGroupCriterion",
				AdGroupID: adGroupID,
				Criterion: adwords.Keyword{
					XSIType:   adwords.CriterionTypeKeyword,
					Text:      text,
					MatchType: adwords.MatchTypeBroad,
				},
				UserStatus: adwords.StatusPaused,
				FinalUrls:  []string{fmt.Sprintf(keywordFinalURLFormatLegacy, url.QueryEscape(text))},
			},
		})
	}

	entities, err := uc.adwords.MutateAdGroupCriteria(ctx, ops)
	if err != nil {
		return nil, err
	}

	keywords := make([]provisioning.KeywordResult, 0, len(entities))
	for _, entity := range entities {
		if entity.Criterion == nil {
			continue
		}
		keywords = append(keywords, provisioning.KeywordResult{
			ResourceName: legacyResourceName(customerID, "adGroupCriteria", entity.Criterion.ID),
			ID:           entity.Criterion.ID,
			Text:         entity.Criterion.Text,
			MatchType:    entity.Criterion.MatchType,
		})
	}
	if len(keywords) == 0 {
		return nil, provisioning.ErrResourceNotFetched
	}

	return keywords, nil
}
