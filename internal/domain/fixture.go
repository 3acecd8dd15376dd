package domain

import "fmt"

// Corpus is a loaded golden test file.
type Corpus struct {
	Path     string        `json:"path"`
	Metadata *Metadata     `json:"metadata,omitempty"`
	Cases    []FixtureCase `json:"test_cases"`
}

// Metadata is advisory; a wrong TotalTestCases is logged, never fatal.
type Metadata struct {
	Version        string `yaml:"version"          json:"version,omitempty"`
	TotalTestCases int    `yaml:"total_test_cases" json:"total_test_cases,omitempty"`
}

// CountMismatch reports whether the declared case count disagrees with actual.
func (m *Metadata) CountMismatch(actual int) bool {
	return m != nil && m.TotalTestCases != 0 && m.TotalTestCases != actual
}

// FixtureCase pins engine behavior for one input. Raw keeps the undecoded
// record so structural checks can see values the typed decode rejects.
type FixtureCase struct {
	ID       string            `yaml:"id"       json:"id"`
	Name     string            `yaml:"name"     json:"name"`
	Category string            `yaml:"category" json:"category"`
	Input    Asset             `yaml:"input"    json:"input"`
	Context  EvaluationContext `yaml:"context"  json:"context"`
	Expected Expectation       `yaml:"expected" json:"expected"`

	Index     int            `yaml:"-" json:"-"`
	Raw       map[string]any `yaml:"-" json:"-"`
	RawErr    error          `yaml:"-" json:"-"` // record unusable as a map
	DecodeErr error          `yaml:"-" json:"-"`
}

// Label is the case id, or a positional name when the id is missing.
func (c FixtureCase) Label() string {
	if c.ID != "" {
		return c.ID
	}
	return fmt.Sprintf("test_%d", c.Index)
}

// GroupKey is the category used to order semantic runs.
func (c FixtureCase) GroupKey() string {
	if c.Category == "" {
		return "uncategorized"
	}
	return c.Category
}

// Asset returns the input routed by the case's group key, so a case is
// evaluated under the same category it is grouped and reported under. An
// uncategorized case matches no trigger and evaluates clean.
func (c FixtureCase) Asset() Asset {
	a := c.Input
	a.Category = c.GroupKey()
	return a
}

// Expectation is the ValidationResult-shaped assertion of a fixture.
type Expectation struct {
	Valid      *bool             `yaml:"valid"      json:"valid"`
	Violations []ExpectedFinding `yaml:"violations" json:"violations,omitempty"`
	Warnings   []ExpectedFinding `yaml:"warnings"   json:"warnings,omitempty"`
}

// ExpectedFinding is matched only on the fields it sets.
type ExpectedFinding struct {
	RuleID   string `yaml:"rule_id"  json:"rule_id,omitempty"`
	Severity string `yaml:"severity" json:"severity,omitempty"`
	Field    string `yaml:"field"    json:"field,omitempty"`
	Message  string `yaml:"message"  json:"message,omitempty"`
}
