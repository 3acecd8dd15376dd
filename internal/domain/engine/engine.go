// Package engine evaluates content assets against a rule catalog. It does no
// I/O and holds no mutable state, so one Engine may serve concurrent callers.
package engine

import (
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/brandguard/brandguard/internal/domain/rules"
)

type Engine struct {
	catalog *rules.Catalog
}

// New creates an Engine over catalog, or over rules.Default() when nil.
func New(catalog *rules.Catalog) *Engine {
	if catalog == nil {
		catalog = rules.Default()
	}
	return &Engine{catalog: catalog}
}

// Rules lists the catalog the engine dispatches to.
func (e *Engine) Rules() []rules.Rule {
	return e.catalog.Rules()
}

// Evaluate runs every rule whose trigger is contained in asset.Category, in
// catalog order, and returns a fresh result. Opt-in rules run only when the
// campaign enables them; rules the campaign disables are skipped.
func (e *Engine) Evaluate(asset domain.Asset, ectx domain.EvaluationContext) (*domain.ValidationResult, error) {
	if asset.Category == "" {
		return nil, domain.ErrEmptyCategory
	}
	if ectx.Brand == nil {
		return nil, domain.ErrMissingBrand
	}

	result := domain.NewValidationResult()
	for _, rule := range e.catalog.Matching(asset.Category) {
		if rule.OptIn && !ectx.Campaign.Enables(rule.ID) {
			continue
		}
		if ectx.Campaign.Disables(rule.ID) {
			continue
		}
		if f := suppress(rule.Check(asset, ectx), ectx.Campaign); !f.Empty() {
			result.Add(f)
		}
	}
	return result, nil
}

// suppress drops findings a campaign has disabled, for rules that report
// under more than one id.
func suppress(f domain.Findings, campaign *domain.CampaignContext) domain.Findings {
	if campaign == nil || len(campaign.ComplianceOverrides.DisabledRules) == 0 {
		return f
	}
	var out domain.Findings
	for _, v := range f.Violations {
		if !campaign.Disables(v.RuleID) {
			out.Violations = append(out.Violations, v)
		}
	}
	for _, w := range f.Warnings {
		if !campaign.Disables(w.RuleID) {
			out.Warnings = append(out.Warnings, w)
		}
	}
	out.Suggestions = f.Suggestions
	return out
}
