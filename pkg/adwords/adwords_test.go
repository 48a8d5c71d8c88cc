package adwords

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(baseURL string) IAdWords {
	return NewAdWords(Config{
		BaseURL:          baseURL,
		Version:          "v201809",
		DeveloperToken:   "dev-token",
		AccessToken:      "access-token",
		ClientCustomerID: "123-456-7890",
		UserAgent:        "campaign-srv",
		Timeout:          5 * time.Second,
	})
}

const campaignResponseXML = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <mutateResponse xmlns="https://adwords.google.com/api/adwords/cm/v201809">
      <rval>
        <value>
          <id>9222</id>
          <name>Interplanetary Cruise #abc</name>
        </value>
      </rval>
    </mutateResponse>
  </soap:Body>
</soap:Envelope>`

func TestMutateCampaigns(t *testing.T) {
	var gotPath, gotSOAPAction, gotContentType, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSOAPAction = r.Header.Get("SOAPAction")
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = w.Write([]byte(campaignResponseXML))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	entities, err := client.MutateCampaigns(context.Background(), []CampaignOperation{{
		Operator: OperatorAdd,
		Operand: CampaignOperand{
			Name:                   "Interplanetary Cruise #abc",
			Status:                 StatusPaused,
			AdvertisingChannelType: ChannelTypeSearch,
			BiddingStrategyConfiguration: BiddingStrategyConfiguration{
				BiddingStrategyType: BiddingStrategyManualCpc,
			},
			Budget:         BudgetRef{BudgetID: 111},
			NetworkSetting: NetworkSetting{TargetGoogleSearch: true, TargetSearchNetwork: true},
		},
	}})
	if err != nil {
		t.Fatalf("MutateCampaigns returned error: %v", err)
	}

	if gotPath != "/v201809/CampaignService" {
		t.Errorf("path: got %s", gotPath)
	}
	if gotSOAPAction != "mutate" {
		t.Errorf("SOAPAction header: got %s", gotSOAPAction)
	}
	if !strings.HasPrefix(gotContentType, "text/xml") {
		t.Errorf("content type: got %s", gotContentType)
	}

	for _, want := range []string{
		"<ns:clientCustomerId>123-456-7890</ns:clientCustomerId>",
		"<ns:developerToken>dev-token</ns:developerToken>",
		"<ns:operator>ADD</ns:operator>",
		"<ns:biddingStrategyType>MANUAL_CPC</ns:biddingStrategyType>",
		"<ns:budgetId>111</ns:budgetId>",
		"<ns:status>PAUSED</ns:status>",
	} {
		if !strings.Contains(gotBody, want) {
			t.Errorf("request body missing %s", want)
		}
	}

	if len(entities) != 1 {
		t.Fatalf("entities: got %d, want 1", len(entities))
	}
	if entities[0].ID != 9222 {
		t.Errorf("campaign id: got %d, want 9222", entities[0].ID)
	}
	if entities[0].Name != "Interplanetary Cruise #abc" {
		t.Errorf("campaign name: got %s", entities[0].Name)
	}
}

func TestMutateAdGroupAdsXSITypes(t *testing.T) {
	var gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <mutateResponse xmlns="https://adwords.google.com/api/adwords/cm/v201809">
      <rval>
        <value>
          <adGroupId>9333</adGroupId>
          <ad>
            <id>9401</id>
            <headlinePart1>Cruise #abc to Mars</headlinePart1>
            <headlinePart2>Best Space Cruise Line</headlinePart2>
            <headlinePart3>For Your Loved Ones</headlinePart3>
          </ad>
        </value>
      </rval>
    </mutateResponse>
  </soap:Body>
</soap:Envelope>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	entities, err := client.MutateAdGroupAds(context.Background(), []AdGroupAdOperation{{
		Operator: OperatorAdd,
		Operand: AdGroupAdOperand{
			XSIType:   "AdGroupAd",
			AdGroupID: 9333,
			Status:    StatusPaused,
			Ad: ExpandedTextAd{
				XSIType:       "ExpandedTextAd",
				HeadlinePart1: "Cruise #abc to Mars",
				HeadlinePart2: "Best Space Cruise Line",
				HeadlinePart3: "For Your Loved Ones",
				Description:   "Buy your tickets now!",
				Description2:  "Discount ends soon",
				FinalUrls:     []string{"http://www.example.com/"},
			},
		},
	}})
	if err != nil {
		t.Fatalf("MutateAdGroupAds returned error: %v", err)
	}

	if !strings.Contains(gotBody, `xsi:type="AdGroupAd"`) {
		t.Error("request body missing AdGroupAd xsi:type")
	}
	if !strings.Contains(gotBody, `xsi:type="ExpandedTextAd"`) {
		t.Error("request body missing ExpandedTextAd xsi:type")
	}
	if !strings.Contains(gotBody, "<ns:headlinePart3>For Your Loved Ones</ns:headlinePart3>") {
		t.Error("request body missing headlinePart3")
	}
	if !strings.Contains(gotBody, "<ns:description2>Discount ends soon</ns:description2>") {
		t.Error("request body missing description2")
	}

	if len(entities) != 1 || entities[0].Ad == nil {
		t.Fatalf("entities: got %+v", entities)
	}
	if entities[0].Ad.ID != 9401 {
		t.Errorf("ad id: got %d, want 9401", entities[0].Ad.ID)
	}
	if entities[0].Ad.HeadlinePart1 != "Cruise #abc to Mars" {
		t.Errorf("headline 1: got %s", entities[0].Ad.HeadlinePart1)
	}
}

func TestMutateAdGroupCriteria(t *testing.T) {
	var gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <mutateResponse xmlns="https://adwords.google.com/api/adwords/cm/v201809">
      <rval>
        <value>
          <adGroupId>9333</adGroupId>
          <criterion>
            <id>9501</id>
            <text>mars cruise</text>
            <matchType>BROAD</matchType>
          </criterion>
        </value>
      </rval>
    </mutateResponse>
  </soap:Body>
</soap:Envelope>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	entities, err := client.MutateAdGroupCriteria(context.Background(), []AdGroupCriterionOperation{{
		Operator: OperatorAdd,
		Operand: AdGroupCriterionOperand{
			XSIType:   "BiddableAdGroupCriterion",
			AdGroupID: 9333,
			Criterion: Keyword{
				XSIType:   CriterionTypeKeyword,
				Text:      "mars cruise",
				MatchType: MatchTypeBroad,
			},
			UserStatus: StatusPaused,
			FinalUrls:  []string{"http://www.example.com/mars/cruise/?kw=mars+cruise"},
		},
	}})
	if err != nil {
		t.Fatalf("MutateAdGroupCriteria returned error: %v", err)
	}

	if !strings.Contains(gotBody, `xsi:type="BiddableAdGroupCriterion"`) {
		t.Error("request body missing BiddableAdGroupCriterion xsi:type")
	}
	if !strings.Contains(gotBody, "<ns:matchType>BROAD</ns:matchType>") {
		t.Error("request body missing BROAD match type")
	}
	if !strings.Contains(gotBody, "<ns:userStatus>PAUSED</ns:userStatus>") {
		t.Error("request body missing PAUSED user status")
	}

	if len(entities) != 1 || entities[0].Criterion == nil {
		t.Fatalf("entities: got %+v", entities)
	}
	if entities[0].Criterion.Text != "mars cruise" {
		t.Errorf("keyword text: got %s", entities[0].Criterion.Text)
	}
	if entities[0].Criterion.MatchType != "BROAD" {
		t.Errorf("match type: got %s", entities[0].Criterion.MatchType)
	}
}

func TestMutateFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Client</faultcode>
      <faultstring>BudgetError.INVALID_BUDGET</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.MutateAdGroups(context.Background(), []AdGroupOperation{{
		Operator: OperatorAdd,
		Operand:  AdGroupOperand{CampaignID: 9222, Name: "x"},
	}})
	if err == nil {
		t.Fatal("expected an error for a SOAP fault")
	}

	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("expected *Fault, got %T: %v", err, err)
	}
	if fault.Message != "BudgetError.INVALID_BUDGET" {
		t.Errorf("fault message: got %s", fault.Message)
	}
}

func TestMutateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <mutateResponse xmlns="https://adwords.google.com/api/adwords/cm/v201809">
      <rval></rval>
    </mutateResponse>
  </soap:Body>
</soap:Envelope>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.MutateCampaigns(context.Background(), []CampaignOperation{{
		Operator: OperatorAdd,
		Operand:  CampaignOperand{Name: "x"},
	}})
	if err == nil {
		t.Fatal("expected an error for an empty mutate response")
	}
}
