package domain

// Violation is a finding that blocks publication.
type Violation struct {
	RuleID       string        `json:"rule_id"                 yaml:"rule_id"`
	Severity     Severity      `json:"severity"                yaml:"severity"`
	Message      string        `json:"message"                 yaml:"message"`
	Field        string        `json:"field,omitempty"         yaml:"field"`
	Value        string        `json:"value,omitempty"         yaml:"value"`
	SuggestedFix *SuggestedFix `json:"suggested_fix,omitempty" yaml:"suggested_fix"`
}

type SuggestedFix struct {
	Type     string `json:"type"               yaml:"type"`
	Value    string `json:"value,omitempty"    yaml:"value"`
	Guidance string `json:"guidance,omitempty" yaml:"guidance"`
}

// Warning is advisory and never affects validity.
type Warning struct {
	RuleID  string `json:"rule_id"         yaml:"rule_id"`
	Message string `json:"message"         yaml:"message"`
	Field   string `json:"field,omitempty" yaml:"field"`
}

type Suggestion struct {
	Type           string `json:"type"                      yaml:"type"`
	Message        string `json:"message"                   yaml:"message"`
	SuggestedValue string `json:"suggested_value,omitempty" yaml:"suggested_value"`
}

// Findings is what a single rule contributes to a result.
type Findings struct {
	Violations  []Violation
	Warnings    []Warning
	Suggestions []Suggestion
}

// Empty reports whether the rule found nothing.
func (f Findings) Empty() bool {
	return len(f.Violations) == 0 && len(f.Warnings) == 0 && len(f.Suggestions) == 0
}

// ValidationResult is the verdict for one asset. Valid is true exactly when
// Violations is empty.
type ValidationResult struct {
	Valid       bool         `json:"valid"`
	Violations  []Violation  `json:"violations"`
	Warnings    []Warning    `json:"warnings"`
	Suggestions []Suggestion `json:"suggestions"`
}

// NewValidationResult returns a valid result with empty, non-nil slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Valid:       true,
		Violations:  []Violation{},
		Warnings:    []Warning{},
		Suggestions: []Suggestion{},
	}
}

// Add appends f and recomputes Valid.
func (r *ValidationResult) Add(f Findings) {
	r.Violations = append(r.Violations, f.Violations...)
	r.Warnings = append(r.Warnings, f.Warnings...)
	r.Suggestions = append(r.Suggestions, f.Suggestions...)
	r.Valid = len(r.Violations) == 0
}

// CriticalCount counts violations graded critical.
func (r *ValidationResult) CriticalCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == SeverityCritical {
			n++
		}
	}
	return n
}

// ValidationRequest is one asset submitted for evaluation outside the harness.
type ValidationRequest struct {
	Asset   Asset             `json:"asset"   yaml:"asset"`
	Context EvaluationContext `json:"context" yaml:"context"`
}

// ValidationObserver is told about every evaluated asset.
type ValidationObserver interface {
	ObserveValidation(category string, result *ValidationResult)
}
