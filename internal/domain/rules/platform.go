package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brandguard/brandguard/internal/domain"
)

func checkTwitterLength(asset domain.Asset, _ domain.EvaluationContext) domain.Findings {
	var f domain.Findings
	if asset.Content == nil || asset.Content.CharacterCount <= twitterMaxCharacters {
		return f
	}
	n := asset.Content.CharacterCount
	f.Violations = append(f.Violations, domain.Violation{
		RuleID:   TwitterCharacterLimit,
		Severity: domain.SeverityError,
		Message:  fmt.Sprintf("Twitter post exceeds %d character limit (%d characters)", twitterMaxCharacters, n),
		Field:    "content.text",
		Value:    strconv.Itoa(n),
	})
	return f
}

// LinkedInHashtagMax is the brand's configured maximum, or 5 when the
// brand sets none (or sets zero).
func LinkedInHashtagMax(brand *domain.BrandContext) int {
	if brand == nil {
		return defaultLinkedInHashtagMax
	}
	rule, ok := brand.PlatformRules["linkedin"]
	if !ok || rule.HashtagStrategy == nil || rule.HashtagStrategy.Max <= 0 {
		return defaultLinkedInHashtagMax
	}
	return rule.HashtagStrategy.Max
}

func checkLinkedInHashtags(asset domain.Asset, ectx domain.EvaluationContext) domain.Findings {
	var f domain.Findings
	if asset.Content == nil {
		return f
	}
	limit := LinkedInHashtagMax(ectx.Brand)
	n := asset.Content.HashtagCount
	if n <= limit {
		return f
	}
	f.Violations = append(f.Violations, domain.Violation{
		RuleID:   LinkedInHashtagLimit,
		Severity: domain.SeverityError,
		Message:  fmt.Sprintf("LinkedIn post has %d hashtags, maximum is %d", n, limit),
		Field:    "content.hashtags",
		Value:    strconv.Itoa(n),
	})
	return f
}

// checkCampaignHashtags is opt-in. Tags compare without the leading '#'
// and without case.
func checkCampaignHashtags(asset domain.Asset, ectx domain.EvaluationContext) domain.Findings {
	var f domain.Findings
	if asset.Content == nil || ectx.Campaign == nil {
		return f
	}
	present := make(map[string]bool, len(asset.Content.Hashtags))
	for _, h := range asset.Content.Hashtags {
		present[normalizeTag(h)] = true
	}
	for _, tag := range ectx.Campaign.Messaging.Hashtags.AlwaysInclude {
		if tag == "" || present[normalizeTag(tag)] {
			continue
		}
		f.Violations = append(f.Violations, domain.Violation{
			RuleID:   CampaignHashtagCheck,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("Campaign hashtag %s is missing", tag),
			Field:    "content.hashtags",
			Value:    tag,
		})
	}
	return f
}

func normalizeTag(tag string) string {
	return fold(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
}
