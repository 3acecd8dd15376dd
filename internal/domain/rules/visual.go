package rules

import (
	"fmt"
	"slices"

	"github.com/brandguard/brandguard/internal/domain"
)

func checkColors(asset domain.Asset, ectx domain.EvaluationContext) domain.Findings {
	var f domain.Findings
	if len(asset.ColorsUsed) == 0 || ectx.Brand == nil || ectx.Brand.VisualIdentity.Colors == nil {
		return f
	}
	palette := ectx.Brand.VisualIdentity.Colors
	allowed := palette.AllowedHexes()

	var fix *domain.SuggestedFix
	if palette.Primary != nil && palette.Primary.Hex != "" {
		fix = &domain.SuggestedFix{Type: "replace_color", Value: palette.Primary.Hex}
	}

	for i, color := range asset.ColorsUsed {
		if slices.Contains(allowed, color) {
			continue
		}
		f.Violations = append(f.Violations, domain.Violation{
			RuleID:       BrandColorCheck,
			Severity:     domain.SeverityError,
			Message:      fmt.Sprintf("Color %s is not in brand palette", color),
			Field:        fmt.Sprintf("colors_used[%d]", i),
			Value:        color,
			SuggestedFix: fix,
		})
	}
	if len(f.Violations) > 0 && fix != nil {
		f.Suggestions = append(f.Suggestions, domain.Suggestion{
			Type:           "replace_color",
			Message:        "Use a color from the brand palette",
			SuggestedValue: fix.Value,
		})
	}
	return f
}

// checkFonts matches families exactly; "inter" is not "Inter".
func checkFonts(asset domain.Asset, ectx domain.EvaluationContext) domain.Findings {
	var f domain.Findings
	if len(asset.FontsUsed) == 0 || ectx.Brand == nil || ectx.Brand.VisualIdentity.Typography == nil {
		return f
	}
	allowed := ectx.Brand.VisualIdentity.Typography.Families()

	for i, font := range asset.FontsUsed {
		if slices.Contains(allowed, font.Family) {
			continue
		}
		f.Violations = append(f.Violations, domain.Violation{
			RuleID:   BrandFontCheck,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("Font '%s' is not an approved brand font", font.Family),
			Field:    fmt.Sprintf("fonts_used[%d].family", i),
			Value:    font.Family,
		})
	}
	return f
}
