package googleads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// MutateCampaignBudgets creates or updates campaign budgets.
func (g *googleAdsImpl) MutateCampaignBudgets(ctx context.Context, customerID string, ops []CampaignBudgetOperation) (*MutateResponse, error) {
	return g.mutate(ctx, customerID, serviceCampaignBudgets, ops)
}

// MutateCampaigns creates or updates campaigns.
func (g *googleAdsImpl) MutateCampaigns(ctx context.Context, customerID string, ops []CampaignOperation) (*MutateResponse, error) {
	return g.mutate(ctx, customerID, serviceCampaigns, ops)
}

// MutateAdGroups creates or updates ad groups.
func (g *googleAdsImpl) MutateAdGroups(ctx context.Context, customerID string, ops []AdGroupOperation) (*MutateResponse, error) {
	return g.mutate(ctx, customerID, serviceAdGroups, ops)
}

// MutateAdGroupAds creates or updates ad group ads. All operations go out in
// one request.
func (g *googleAdsImpl) MutateAdGroupAds(ctx context.Context, customerID string, ops []AdGroupAdOperation) (*MutateResponse, error) {
	return g.mutate(ctx, customerID, serviceAdGroupAds, ops)
}

// MutateAdGroupCriteria creates or updates ad group criteria. All operations
// go out in one request.
func (g *googleAdsImpl) MutateAdGroupCriteria(ctx context.Context, customerID string, ops []AdGroupCriterionOperation) (*MutateResponse, error) {
	return g.mutate(ctx, customerID, serviceAdGroupCriteria, ops)
}

// Search runs a query and returns all rows, following page tokens.
func (g *googleAdsImpl) Search(ctx context.Context, customerID, query string) ([]SearchRow, error) {
	url := fmt.Sprintf("%s/%s/customers/%s/%s:search", g.baseURL, g.version, customerID, serviceGoogleAdsSearch)

	var rows []SearchRow
	pageToken := ""
	for {
		req := searchRequest{
			Query:     query,
			PageSize:  PageSize,
			PageToken: pageToken,
		}

		body, statusCode, err := g.httpClient.Post(ctx, url, req, g.headers())
		if err != nil {
			return nil, fmt.Errorf("googleads: search request failed: %w", err)
		}
		if statusCode != http.StatusOK {
			return nil, newAPIError(statusCode, body)
		}

		var resp searchResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("googleads: unmarshal search response: %w", err)
		}

		rows = append(rows, resp.Results...)
		if resp.NextPageToken == "" {
			return rows, nil
		}
		pageToken = resp.NextPageToken
	}
}

func (g *googleAdsImpl) mutate(ctx context.Context, customerID, service string, ops any) (*MutateResponse, error) {
	url := fmt.Sprintf("%s/%s/customers/%s/%s:mutate", g.baseURL, g.version, customerID, service)

	body, statusCode, err := g.httpClient.Post(ctx, url, mutateRequest{Operations: ops}, g.headers())
	if err != nil {
		return nil, fmt.Errorf("googleads: %s mutate request failed: %w", service, err)
	}
	if statusCode != http.StatusOK {
		return nil, newAPIError(statusCode, body)
	}

	var resp MutateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("googleads: unmarshal %s mutate response: %w", service, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("googleads: %s mutate returned no results", service)
	}

	return &resp, nil
}

func (g *googleAdsImpl) headers() map[string]string {
	headers := map[string]string{
		"Authorization":      "Bearer " + g.accessToken,
		headerDeveloperToken: g.developerToken,
	}
	if g.loginCustomerID != "" {
		headers[headerLoginCustomerID] = g.loginCustomerID
	}
	return headers
}
