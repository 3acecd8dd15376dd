package rules

import (
	"fmt"
	"strings"

	"github.com/brandguard/brandguard/internal/domain"
)

// FCA rules only look at investment promotions.
func promotionText(asset domain.Asset) (string, bool) {
	if asset.Content == nil || asset.Content.ContentType != investmentPromotion {
		return "", false
	}
	return fold(asset.Content.Text), true
}

func checkRiskWarning(asset domain.Asset, _ domain.EvaluationContext) domain.Findings {
	var f domain.Findings
	text, ok := promotionText(asset)
	if !ok || strings.Contains(text, riskWarningPhrase) {
		return f
	}
	f.Violations = append(f.Violations, domain.Violation{
		RuleID:   FCARiskWarningRequired,
		Severity: domain.SeverityCritical,
		Message:  "Investment promotions require risk warning under FCA COBS 4",
		Field:    "content",
		SuggestedFix: &domain.SuggestedFix{
			Type:     "append_text",
			Value:    "Capital at risk.",
			Guidance: "Add a prominent capital-at-risk warning to the promotion",
		},
	})
	return f
}

// checkProhibitedClaims reports each matched phrase separately, so text with
// both "risk-free" and "guaranteed returns" yields two violations.
func checkProhibitedClaims(asset domain.Asset, _ domain.EvaluationContext) domain.Findings {
	var f domain.Findings
	text, ok := promotionText(asset)
	if !ok {
		return f
	}
	for _, claim := range prohibitedClaims {
		if !strings.Contains(text, claim) {
			continue
		}
		f.Violations = append(f.Violations, domain.Violation{
			RuleID:   FCAProhibitedClaim,
			Severity: domain.SeverityCritical,
			Message:  fmt.Sprintf("Claims of '%s' are prohibited under FCA rules", claim),
			Field:    "content.text",
			Value:    claim,
		})
	}
	return f
}
