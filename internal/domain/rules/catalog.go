package rules

import (
	"fmt"
	"strings"

	"github.com/brandguard/brandguard/internal/domain"
)

// CheckFunc evaluates one rule. It must not mutate its inputs and must
// treat absent optional data as nothing to check.
type CheckFunc func(asset domain.Asset, ectx domain.EvaluationContext) domain.Findings

// Rule is a (trigger, predicate) pair. It fires for every asset whose
// category contains Trigger, so "compliance.fca.risk_warning" routes to
// rules triggered by "compliance.fca".
type Rule struct {
	ID          string `json:"id"`
	Trigger     string `json:"trigger"`
	Description string `json:"description"`
	// OptIn rules only run when a campaign lists them in additional_rules.
	OptIn bool      `json:"opt_in"`
	Check CheckFunc `json:"-"`
}

// Matches reports whether the rule applies to category.
func (r Rule) Matches(category string) bool {
	return r.Trigger != "" && strings.Contains(category, r.Trigger)
}

// Catalog is an ordered, immutable set of rules. Order is declaration order
// and determines the order of findings in a result.
type Catalog struct {
	rules []Rule
}

// New builds a catalog, rejecting incomplete rules. Two rules may share a
// trigger but not an ID.
func New(rules ...Rule) (*Catalog, error) {
	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		switch {
		case r.ID == "":
			return nil, fmt.Errorf("rule %d: empty id", i)
		case r.Trigger == "":
			return nil, fmt.Errorf("rule %s: empty trigger", r.ID)
		case r.Check == nil:
			return nil, fmt.Errorf("rule %s: nil check", r.ID)
		case seen[r.ID]:
			return nil, fmt.Errorf("rule %s: duplicate id", r.ID)
		}
		seen[r.ID] = true
	}
	out := make([]Rule, len(rules))
	copy(out, rules)
	return &Catalog{rules: out}, nil
}

// With returns a new catalog with extra appended after the existing rules.
func (c *Catalog) With(extra ...Rule) (*Catalog, error) {
	return New(append(c.Rules(), extra...)...)
}

// Rules returns a copy of the catalog in declaration order.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Matching returns the rules whose trigger is contained in category.
func (c *Catalog) Matching(category string) []Rule {
	var out []Rule
	for _, r := range c.rules {
		if r.Matches(category) {
			out = append(out, r)
		}
	}
	return out
}

// Triggers lists the distinct triggers of list in first-seen order.
func Triggers(list []Rule) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range list {
		if !seen[r.Trigger] {
			seen[r.Trigger] = true
			out = append(out, r.Trigger)
		}
	}
	return out
}

// Lookup finds a rule by id.
func (c *Catalog) Lookup(id string) (Rule, bool) {
	for _, r := range c.rules {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// Default returns the built-in brand, regulatory and platform rules.
func Default() *Catalog {
	return &Catalog{rules: []Rule{
		{
			ID:          BrandColorCheck,
			Trigger:     "colors",
			Description: "colors used must come from the brand palette",
			Check:       checkColors,
		},
		{
			ID:          BrandFontCheck,
			Trigger:     "typography",
			Description: "font families must be an approved brand font",
			Check:       checkFonts,
		},
		{
			ID:          BannedWordCheck,
			Trigger:     "vocabulary",
			Description: "text must not contain banned vocabulary",
			Check:       checkBannedWords,
		},
		{
			ID:          AvoidWordCheck,
			Trigger:     "vocabulary",
			Description: "text should not contain discouraged vocabulary",
			Check:       checkAvoidWords,
		},
		{
			ID:          FCARiskWarningRequired,
			Trigger:     "compliance.fca",
			Description: "investment promotions must carry a capital-at-risk warning",
			Check:       checkRiskWarning,
		},
		{
			ID:          FCAProhibitedClaim,
			Trigger:     "compliance.fca",
			Description: "investment promotions must not claim guaranteed or risk-free returns",
			Check:       checkProhibitedClaims,
		},
		{
			ID:          TwitterCharacterLimit,
			Trigger:     "platform.twitter",
			Description: "tweets must not exceed 280 characters",
			Check:       checkTwitterLength,
		},
		{
			ID:          LinkedInHashtagLimit,
			Trigger:     "platform.linkedin",
			Description: "LinkedIn posts must respect the brand hashtag maximum",
			Check:       checkLinkedInHashtags,
		},
		{
			ID:          CampaignHashtagCheck,
			Trigger:     "platform",
			Description: "posts must include every always_include campaign hashtag",
			OptIn:       true,
			Check:       checkCampaignHashtags,
		},
	}}
}
