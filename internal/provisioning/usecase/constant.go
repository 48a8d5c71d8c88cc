package usecase

const (
	// numberOfAds is how many text ads one run attaches to the ad group.
	numberOfAds = 5

	budgetNameFormat   = "Interplanetary Cruise Budget #%s"
	budgetAmountMicros = 500000

	campaignNameFormat = "Interplanetary Cruise #%s"
	campaignDateFormat = "20060102"

	adGroupNameFormat       = "Earth to Mars Cruises #%s"
	adGroupNameFormatLegacy = "Earth to Mars Cruise #%s"
	adGroupCpcBidMicros     = 10000000

	adHeadline1Format       = "Cruise to Mars #%s"
	adHeadline1FormatLegacy = "Cruise #%s to Mars"
	adHeadline2             = "Best Space Cruise Line"
	adHeadline3Legacy       = "For Your Loved Ones"
	adDescription           = "Buy your tickets now!"
	adDescription2Legacy    = "Discount ends soon"
	adFinalURL              = "http://www.example.com"
	adFinalURLLegacy        = "http://www.example.com/"

	keywordFinalURLFormatLegacy = "http://www.example.com/mars/cruise/?kw=%s"
)

// keywordsToAdd are the keyword texts attached to every ad group.
var keywordsToAdd = []string{"mars cruise", "space hotel"}
