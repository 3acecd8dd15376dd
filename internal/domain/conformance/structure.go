package conformance

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

var requiredFields = []string{"id", "name", "category", "input", "expected"}

// ValidateStructure checks one raw fixture record without evaluating it.
// A field counts as missing when it is absent, null, empty, false or zero.
func ValidateStructure(raw map[string]any) []string {
	var problems []string
	for _, field := range requiredFields {
		if missing(raw[field]) {
			problems = append(problems, "missing "+field)
		}
	}

	expected := raw["expected"]
	if !missing(expected) {
		m, ok := expected.(map[string]any)
		if _, isBool := m["valid"].(bool); !ok || !isBool {
			problems = append(problems, "expected.valid must be boolean")
		}
	}
	return problems
}

func missing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case int:
		return x == 0
	case int64:
		return x == 0
	case uint64:
		return x == 0
	case float64:
		return x == 0
	}
	return false
}

// LintInputKeys returns advisory hints for camelCase keys under input and
// input.content, which the loader silently ignores. Hints never fail a case.
func LintInputKeys(raw map[string]any) []string {
	input, ok := raw["input"].(map[string]any)
	if !ok {
		return nil
	}
	hints := lintKeys("input", input)
	if content, ok := input["content"].(map[string]any); ok {
		hints = append(hints, lintKeys("input.content", content)...)
	}
	return hints
}

func lintKeys(path string, m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var hints []string
	for _, k := range keys {
		if !hasUpper(k) {
			continue
		}
		hints = append(hints, fmt.Sprintf("%s.%s looks like camelCase, did you mean %s?", path, k, SnakeCase(k)))
	}
	return hints
}

// SnakeCase converts colorsUsed to colors_used.
func SnakeCase(s string) string {
	parts := camelcase.Split(s)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "_" || p == "" {
			continue
		}
		out = append(out, strings.ToLower(p))
	}
	return strings.Join(out, "_")
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
