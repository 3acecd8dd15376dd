package domain

// Severity grades a violation. Every severity invalidates the asset.
type Severity string

const (
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// BrandContext is the slice of a brand genome the engine reads.
type BrandContext struct {
	VisualIdentity VisualIdentity          `yaml:"visual_identity" json:"visual_identity"`
	VerbalIdentity VerbalIdentity          `yaml:"verbal_identity" json:"verbal_identity"`
	PlatformRules  map[string]PlatformRule `yaml:"platform_rules"  json:"platform_rules,omitempty"`
}

type VisualIdentity struct {
	Colors     *ColorPalette `yaml:"colors"     json:"colors,omitempty"`
	Typography *Typography   `yaml:"typography" json:"typography,omitempty"`
}

type ColorPalette struct {
	Primary   *BrandColor     `yaml:"primary"   json:"primary,omitempty"`
	Secondary []BrandColor    `yaml:"secondary" json:"secondary,omitempty"`
	Accent    []BrandColor    `yaml:"accent"    json:"accent,omitempty"`
	Neutral   *NeutralPalette `yaml:"neutral"   json:"neutral,omitempty"`
}

type BrandColor struct {
	Name string `yaml:"name" json:"name,omitempty"`
	Hex  string `yaml:"hex"  json:"hex"`
}

type NeutralPalette struct {
	Background    string `yaml:"background"     json:"background,omitempty"`
	Surface       string `yaml:"surface"        json:"surface,omitempty"`
	TextPrimary   string `yaml:"text_primary"   json:"text_primary,omitempty"`
	TextSecondary string `yaml:"text_secondary" json:"text_secondary,omitempty"`
	Border        string `yaml:"border"         json:"border,omitempty"`
}

// AllowedHexes returns the palette colors an asset may use: primary,
// neutral background, then every secondary and accent hex. Blank entries
// are skipped.
func (p ColorPalette) AllowedHexes() []string {
	var out []string
	add := func(hex string) {
		if hex != "" {
			out = append(out, hex)
		}
	}
	if p.Primary != nil {
		add(p.Primary.Hex)
	}
	if p.Neutral != nil {
		add(p.Neutral.Background)
	}
	for _, c := range p.Secondary {
		add(c.Hex)
	}
	for _, c := range p.Accent {
		add(c.Hex)
	}
	return out
}

type Typography struct {
	PrimaryFont   *FontDefinition `yaml:"primary_font"   json:"primary_font,omitempty"`
	SecondaryFont *FontDefinition `yaml:"secondary_font" json:"secondary_font,omitempty"`
	MonospaceFont *FontDefinition `yaml:"monospace_font" json:"monospace_font,omitempty"`
}

// Families lists the approved font families in primary, secondary,
// monospace order.
func (t Typography) Families() []string {
	var out []string
	for _, f := range []*FontDefinition{t.PrimaryFont, t.SecondaryFont, t.MonospaceFont} {
		if f != nil && f.Family != "" {
			out = append(out, f.Family)
		}
	}
	return out
}

type FontDefinition struct {
	Family   string   `yaml:"family"   json:"family"`
	Fallback []string `yaml:"fallback" json:"fallback,omitempty"`
}

type VerbalIdentity struct {
	Vocabulary *Vocabulary `yaml:"vocabulary" json:"vocabulary,omitempty"`
}

type Vocabulary struct {
	Preferred    []string      `yaml:"preferred"    json:"preferred,omitempty"`
	Avoid        []string      `yaml:"avoid"        json:"avoid,omitempty"`
	Banned       []string      `yaml:"banned"       json:"banned,omitempty"`
	Replacements []Replacement `yaml:"replacements" json:"replacements,omitempty"`
}

type Replacement struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to"   json:"to"`
}

type PlatformRule struct {
	Enabled         *bool            `yaml:"enabled"          json:"enabled,omitempty"`
	HashtagStrategy *HashtagStrategy `yaml:"hashtag_strategy" json:"hashtag_strategy,omitempty"`
}

type HashtagStrategy struct {
	Max         int      `yaml:"max"         json:"max,omitempty"`
	Recommended int      `yaml:"recommended" json:"recommended,omitempty"`
	Branded     []string `yaml:"branded"     json:"branded,omitempty"`
}

// CampaignContext layers campaign overrides on top of a brand.
type CampaignContext struct {
	ComplianceOverrides ComplianceOverrides `yaml:"compliance_overrides" json:"compliance_overrides"`
	Messaging           Messaging           `yaml:"messaging"            json:"messaging"`
}

type ComplianceOverrides struct {
	AdditionalRules []AdditionalRule `yaml:"additional_rules" json:"additional_rules,omitempty"`
	DisabledRules   []DisabledRule   `yaml:"disabled_rules"   json:"disabled_rules,omitempty"`
}

type AdditionalRule struct {
	RuleID string `yaml:"rule_id" json:"rule_id"`
	Reason string `yaml:"reason"  json:"reason,omitempty"`
}

type DisabledRule struct {
	RuleID     string `yaml:"rule_id"     json:"rule_id"`
	Reason     string `yaml:"reason"      json:"reason,omitempty"`
	ApprovedBy string `yaml:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt string `yaml:"approved_at" json:"approved_at,omitempty"`
}

type Messaging struct {
	Hashtags CampaignHashtags `yaml:"hashtags" json:"hashtags"`
}

type CampaignHashtags struct {
	AlwaysInclude []string `yaml:"always_include" json:"always_include,omitempty"`
}

// Enables reports whether the campaign opts into ruleID.
func (c *CampaignContext) Enables(ruleID string) bool {
	if c == nil {
		return false
	}
	for _, r := range c.ComplianceOverrides.AdditionalRules {
		if r.RuleID == ruleID {
			return true
		}
	}
	return false
}

// Disables reports whether the campaign suppresses ruleID.
func (c *CampaignContext) Disables(ruleID string) bool {
	if c == nil {
		return false
	}
	for _, r := range c.ComplianceOverrides.DisabledRules {
		if r.RuleID == ruleID {
			return true
		}
	}
	return false
}

// EvaluationContext is everything an asset is judged against.
type EvaluationContext struct {
	Brand    *BrandContext    `yaml:"brand_genome"       json:"brand_genome,omitempty"`
	Campaign *CampaignContext `yaml:"campaign_blueprint" json:"campaign_blueprint,omitempty"`
}

// Asset is the unit under validation. Which fields matter depends on Category.
type Asset struct {
	Category   string        `yaml:"category"    json:"category,omitempty"`
	ColorsUsed []string      `yaml:"colors_used" json:"colors_used,omitempty"`
	FontsUsed  []FontUsage   `yaml:"fonts_used"  json:"fonts_used,omitempty"`
	Content    *AssetContent `yaml:"content"     json:"content,omitempty"`
}

type FontUsage struct {
	Family string `yaml:"family" json:"family"`
}

type AssetContent struct {
	Text           string   `yaml:"text"            json:"text,omitempty"`
	ContentType    string   `yaml:"content_type"    json:"content_type,omitempty"`
	CharacterCount int      `yaml:"character_count" json:"character_count,omitempty"`
	HashtagCount   int      `yaml:"hashtag_count"   json:"hashtag_count,omitempty"`
	Hashtags       []string `yaml:"hashtags"        json:"hashtags,omitempty"`
}
