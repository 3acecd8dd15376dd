// Package conformance decides whether an engine result satisfies a golden
// fixture, and whether a fixture is well formed in the first place.
package conformance

import (
	"fmt"

	"github.com/brandguard/brandguard/internal/domain"
)

// Compare diffs actual against expected. Under StrictnessCount only validity
// and finding counts are compared, so two results with the same counts but
// different rule ids pass. StrictnessExact additionally walks findings by
// position and compares every attribute the expectation sets.
func Compare(actual *domain.ValidationResult, expected domain.Expectation, strictness domain.Strictness) []domain.Mismatch {
	var out []domain.Mismatch

	if expected.Valid == nil || *expected.Valid != actual.Valid {
		var want any
		if expected.Valid != nil {
			want = *expected.Valid
		}
		out = append(out, domain.Mismatch{Field: "valid", Expected: want, Actual: actual.Valid})
	}
	if len(actual.Violations) != len(expected.Violations) {
		out = append(out, domain.Mismatch{
			Field:    "violations.length",
			Expected: len(expected.Violations),
			Actual:   len(actual.Violations),
		})
	}
	if len(actual.Warnings) != len(expected.Warnings) {
		out = append(out, domain.Mismatch{
			Field:    "warnings.length",
			Expected: len(expected.Warnings),
			Actual:   len(actual.Warnings),
		})
	}

	if strictness != domain.StrictnessExact {
		return out
	}

	for i, want := range expected.Violations {
		if i >= len(actual.Violations) {
			break
		}
		got := actual.Violations[i]
		prefix := fmt.Sprintf("violations[%d]", i)
		out = appendIfDiffers(out, prefix+".rule_id", want.RuleID, got.RuleID)
		out = appendIfDiffers(out, prefix+".severity", want.Severity, string(got.Severity))
		out = appendIfDiffers(out, prefix+".field", want.Field, got.Field)
		out = appendIfDiffers(out, prefix+".message", want.Message, got.Message)
	}
	for i, want := range expected.Warnings {
		if i >= len(actual.Warnings) {
			break
		}
		got := actual.Warnings[i]
		prefix := fmt.Sprintf("warnings[%d]", i)
		out = appendIfDiffers(out, prefix+".rule_id", want.RuleID, got.RuleID)
		out = appendIfDiffers(out, prefix+".field", want.Field, got.Field)
		out = appendIfDiffers(out, prefix+".message", want.Message, got.Message)
	}
	return out
}

// appendIfDiffers skips attributes the expectation leaves blank.
func appendIfDiffers(out []domain.Mismatch, field, want, got string) []domain.Mismatch {
	if want == "" || want == got {
		return out
	}
	return append(out, domain.Mismatch{Field: field, Expected: want, Actual: got})
}

// ParseStrictness maps a config or flag value to a Strictness. Empty means count.
func ParseStrictness(s string) (domain.Strictness, error) {
	switch domain.Strictness(s) {
	case "", domain.StrictnessCount:
		return domain.StrictnessCount, nil
	case domain.StrictnessExact:
		return domain.StrictnessExact, nil
	default:
		return "", fmt.Errorf("unknown strictness %q (valid: count, exact)", s)
	}
}
