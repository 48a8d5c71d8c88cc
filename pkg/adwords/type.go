package adwords

import (
	"encoding/xml"
	"time"

	pkghttp "campaign-srv/pkg/http"
)

// Config holds AdWords client configuration.
type Config struct {
	BaseURL          string
	Version          string
	DeveloperToken   string
	AccessToken      string
	ClientCustomerID string
	UserAgent        string
	Timeout          time.Duration
}

// adWordsImpl implements IAdWords.
type adWordsImpl struct {
	baseURL          string
	version          string
	developerToken   string
	accessToken      string
	clientCustomerID string
	userAgent        string
	httpClient       pkghttp.IClient
}

// envelope is the outgoing SOAP envelope.
type envelope struct {
	XMLName xml.Name `xml:"soapenv:Envelope"`
	SoapNS  string   `xml:"xmlns:soapenv,attr"`
	APINS   string   `xml:"xmlns:ns,attr"`
	XSINS   string   `xml:"xmlns:xsi,attr"`
	Header  soapHeader
	Body    soapBody
}

type soapHeader struct {
	XMLName       xml.Name `xml:"soapenv:Header"`
	RequestHeader requestHeader
}

type requestHeader struct {
	XMLName          xml.Name `xml:"ns:RequestHeader"`
	ClientCustomerID string   `xml:"ns:clientCustomerId"`
	DeveloperToken   string   `xml:"ns:developerToken"`
	UserAgent        string   `xml:"ns:userAgent"`
}

type soapBody struct {
	XMLName xml.Name `xml:"soapenv:Body"`
	Mutate  any
}

// Money is a micro-amount of the account currency.
type Money struct {
	MicroAmount int64 `xml:"ns:microAmount"`
}

// Bid is a bid within a bidding strategy configuration. XSIType selects the
// concrete bid type, e.g. CpcBid.
type Bid struct {
	XSIType string `xml:"xsi:type,attr"`
	Bid     Money  `xml:"ns:bid"`
}

// BiddingStrategyConfiguration configures bidding on a campaign or ad group.
type BiddingStrategyConfiguration struct {
	BiddingStrategyType string `xml:"ns:biddingStrategyType,omitempty"`
	Bids                []Bid  `xml:"ns:bids,omitempty"`
}

// BudgetRef references a budget by its numeric id.
type BudgetRef struct {
	BudgetID int64 `xml:"ns:budgetId"`
}

// NetworkSetting selects the networks a campaign serves on.
type NetworkSetting struct {
	TargetGoogleSearch  bool `xml:"ns:targetGoogleSearch"`
	TargetSearchNetwork bool `xml:"ns:targetSearchNetwork"`
}

// CampaignOperand is a campaign to create.
type CampaignOperand struct {
	Name                         string                       `xml:"ns:name"`
	Status                       string                       `xml:"ns:status"`
	AdvertisingChannelType       string                       `xml:"ns:advertisingChannelType"`
	StartDate                    string                       `xml:"ns:startDate,omitempty"`
	EndDate                      string                       `xml:"ns:endDate,omitempty"`
	BiddingStrategyConfiguration BiddingStrategyConfiguration `xml:"ns:biddingStrategyConfiguration"`
	Budget                       BudgetRef                    `xml:"ns:budget"`
	NetworkSetting               NetworkSetting               `xml:"ns:networkSetting"`
}

// CampaignOperation is a single campaign mutate operation.
type CampaignOperation struct {
	Operator string          `xml:"ns:operator"`
	Operand  CampaignOperand `xml:"ns:operand"`
}

// AdGroupOperand is an ad group to create.
type AdGroupOperand struct {
	CampaignID                   int64                        `xml:"ns:campaignId"`
	Name                         string                       `xml:"ns:name"`
	Status                       string                       `xml:"ns:status"`
	BiddingStrategyConfiguration BiddingStrategyConfiguration `xml:"ns:biddingStrategyConfiguration"`
	AdGroupAdRotationMode        string                       `xml:"ns:adGroupAdRotationMode,omitempty"`
}

// AdGroupOperation is a single ad group mutate operation.
type AdGroupOperation struct {
	Operator string         `xml:"ns:operator"`
	Operand  AdGroupOperand `xml:"ns:operand"`
}

// ExpandedTextAd is the legacy expanded text ad creative.
type ExpandedTextAd struct {
	XSIType       string   `xml:"xsi:type,attr"`
	HeadlinePart1 string   `xml:"ns:headlinePart1"`
	HeadlinePart2 string   `xml:"ns:headlinePart2"`
	HeadlinePart3 string   `xml:"ns:headlinePart3,omitempty"`
	Description   string   `xml:"ns:description"`
	Description2  string   `xml:"ns:description2,omitempty"`
	FinalUrls     []string `xml:"ns:finalUrls"`
}

// AdGroupAdOperand links an ad to an ad group.
type AdGroupAdOperand struct {
	XSIType   string         `xml:"xsi:type,attr"`
	AdGroupID int64          `xml:"ns:adGroupId"`
	Status    string         `xml:"ns:status"`
	Ad        ExpandedTextAd `xml:"ns:ad"`
}

// AdGroupAdOperation is a single ad group ad mutate operation.
type AdGroupAdOperation struct {
	Operator string           `xml:"ns:operator"`
	Operand  AdGroupAdOperand `xml:"ns:operand"`
}

// Keyword is a keyword criterion.
type Keyword struct {
	XSIType   string `xml:"xsi:type,attr"`
	Text      string `xml:"ns:text"`
	MatchType string `xml:"ns:matchType"`
}

// AdGroupCriterionOperand is a biddable keyword criterion to create.
type AdGroupCriterionOperand struct {
	XSIType    string   `xml:"xsi:type,attr"`
	AdGroupID  int64    `xml:"ns:adGroupId"`
	Criterion  Keyword  `xml:"ns:criterion"`
	UserStatus string   `xml:"ns:userStatus"`
	FinalUrls  []string `xml:"ns:finalUrls"`
}

// AdGroupCriterionOperation is a single criterion mutate operation.
type AdGroupCriterionOperation struct {
	Operator string                  `xml:"ns:operator"`
	Operand  AdGroupCriterionOperand `xml:"ns:operand"`
}

type campaignMutate struct {
	XMLName    xml.Name            `xml:"ns:mutate"`
	Operations []CampaignOperation `xml:"ns:operations"`
}

type adGroupMutate struct {
	XMLName    xml.Name           `xml:"ns:mutate"`
	Operations []AdGroupOperation `xml:"ns:operations"`
}

type adGroupAdMutate struct {
	XMLName    xml.Name             `xml:"ns:mutate"`
	Operations []AdGroupAdOperation `xml:"ns:operations"`
}

type adGroupCriterionMutate struct {
	XMLName    xml.Name                    `xml:"ns:mutate"`
	Operations []AdGroupCriterionOperation `xml:"ns:operations"`
}

// AdEntity is the ad part of a mutate result.
type AdEntity struct {
	ID            int64  `xml:"id"`
	HeadlinePart1 string `xml:"headlinePart1"`
	HeadlinePart2 string `xml:"headlinePart2"`
	HeadlinePart3 string `xml:"headlinePart3"`
}

// KeywordEntity is the criterion part of a mutate result.
type KeywordEntity struct {
	ID        int64  `xml:"id"`
	Text      string `xml:"text"`
	MatchType string `xml:"matchType"`
}

// Entity is one value of a mutate result. Only the fields the service
// returns are populated.
type Entity struct {
	ID        int64          `xml:"id"`
	Name      string         `xml:"name"`
	AdGroupID int64          `xml:"adGroupId"`
	Ad        *AdEntity      `xml:"ad"`
	Criterion *KeywordEntity `xml:"criterion"`
}

type responseEnvelope struct {
	Body struct {
		Fault          *Fault `xml:"Fault"`
		MutateResponse *struct {
			Rval struct {
				Value []Entity `xml:"value"`
			} `xml:"rval"`
		} `xml:"mutateResponse"`
	} `xml:"Body"`
}
