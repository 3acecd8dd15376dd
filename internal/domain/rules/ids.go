package rules

// Built-in rule ids. These appear verbatim in findings and fixtures.
const (
	BrandColorCheck        = "brand_color_check"
	BrandFontCheck         = "brand_font_check"
	BannedWordCheck        = "banned_word_check"
	AvoidWordCheck         = "avoid_word_check"
	FCARiskWarningRequired = "fca_risk_warning_required"
	FCAProhibitedClaim     = "fca_prohibited_claim"
	TwitterCharacterLimit  = "twitter_character_limit"
	LinkedInHashtagLimit   = "linkedin_hashtag_limit"
	CampaignHashtagCheck   = "campaign_hashtag_check"
)

const (
	twitterMaxCharacters      = 280
	defaultLinkedInHashtagMax = 5
	investmentPromotion       = "investment_promotion"
	riskWarningPhrase         = "capital at risk"
)

var prohibitedClaims = []string{"guaranteed returns", "risk-free", "risk free"}
