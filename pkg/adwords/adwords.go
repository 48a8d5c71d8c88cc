package adwords

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
)

const (
	soapEnvelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	xsiNS          = "http://www.w3.org/2001/XMLSchema-instance"
)

// MutateCampaigns creates campaigns and returns the created entities.
func (a *adWordsImpl) MutateCampaigns(ctx context.Context, ops []CampaignOperation) ([]Entity, error) {
	return a.mutate(ctx, serviceCampaign, campaignMutate{Operations: ops})
}

// MutateAdGroups creates ad groups and returns the created entities.
func (a *adWordsImpl) MutateAdGroups(ctx context.Context, ops []AdGroupOperation) ([]Entity, error) {
	return a.mutate(ctx, serviceAdGroup, adGroupMutate{Operations: ops})
}

// MutateAdGroupAds creates ads. All operations go out in one request.
func (a *adWordsImpl) MutateAdGroupAds(ctx context.Context, ops []AdGroupAdOperation) ([]Entity, error) {
	return a.mutate(ctx, serviceAdGroupAd, adGroupAdMutate{Operations: ops})
}

// MutateAdGroupCriteria creates keyword criteria. All operations go out in
// one request.
func (a *adWordsImpl) MutateAdGroupCriteria(ctx context.Context, ops []AdGroupCriterionOperation) ([]Entity, error) {
	return a.mutate(ctx, serviceAdGroupCriterion, adGroupCriterionMutate{Operations: ops})
}

func (a *adWordsImpl) mutate(ctx context.Context, service string, mutateBody any) ([]Entity, error) {
	apiNS := fmt.Sprintf("https://adwords.google.com/api/adwords/cm/%s", a.version)

	env := envelope{
		SoapNS: soapEnvelopeNS,
		APINS:  apiNS,
		XSINS:  xsiNS,
		Header: soapHeader{
			RequestHeader: requestHeader{
				ClientCustomerID: a.clientCustomerID,
				DeveloperToken:   a.developerToken,
				UserAgent:        a.userAgent,
			},
		},
		Body: soapBody{Mutate: mutateBody},
	}

	payload, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("adwords: marshal %s request: %w", service, err)
	}
	payload = append([]byte(xml.Header), payload...)

	url := fmt.Sprintf("%s/%s/%s", a.baseURL, a.version, service)
	headers := map[string]string{
		"Authorization": "Bearer " + a.accessToken,
		"SOAPAction":    "mutate",
	}

	body, statusCode, err := a.httpClient.PostXML(ctx, url, payload, headers)
	if err != nil {
		return nil, fmt.Errorf("adwords: %s request failed: %w", service, err)
	}

	var resp responseEnvelope
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("adwords: unmarshal %s response (status %d): %w", service, statusCode, err)
	}
	if resp.Body.Fault != nil {
		return nil, resp.Body.Fault
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("adwords: %s returned status %d: %s", service, statusCode, string(body))
	}
	if resp.Body.MutateResponse == nil || len(resp.Body.MutateResponse.Rval.Value) == 0 {
		return nil, fmt.Errorf("adwords: %s mutate returned no values", service)
	}

	return resp.Body.MutateResponse.Rval.Value, nil
}
