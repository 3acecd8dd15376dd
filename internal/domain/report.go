package domain

import "time"

// RunMode selects how the harness treats each fixture.
type RunMode string

const (
	ModeSemantic   RunMode = "semantic"
	ModeStructural RunMode = "structural"
)

// Strictness selects the diff policy between actual and expected results.
type Strictness string

const (
	// StrictnessCount compares validity and finding counts only.
	StrictnessCount Strictness = "count"
	// StrictnessExact also compares rule ids position by position, plus
	// severity and field wherever the expectation sets them.
	StrictnessExact Strictness = "exact"
)

// Summary accumulates counts for a single run.
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

func (s *Summary) Record(passed bool) {
	s.Total++
	if passed {
		s.Passed++
	} else {
		s.Failed++
	}
}

func (s *Summary) Skip() {
	s.Total++
	s.Skipped++
}

// PassRate is passed/total as a percentage, 0 for an empty run.
func (s Summary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// Mismatch is one field where the actual result diverged.
type Mismatch struct {
	Field    string `json:"field"`
	Expected any    `json:"expected"`
	Actual   any    `json:"actual"`
}

// CaseOutcome is the per-fixture line of a report.
type CaseOutcome struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Category         string            `json:"category"`
	Passed           bool              `json:"passed"`
	Skipped          bool              `json:"skipped,omitempty"`
	Mismatches       []Mismatch        `json:"mismatches,omitempty"`
	Actual           *ValidationResult `json:"actual,omitempty"`
	Expected         *Expectation      `json:"expected,omitempty"`
	Error            string            `json:"error,omitempty"`
	StructuralErrors []string          `json:"structural_errors,omitempty"`
	Hints            []string          `json:"hints,omitempty"`
}

// TestReport is written once per harness run.
type TestReport struct {
	RunID      string        `json:"run_id"`
	Timestamp  time.Time     `json:"timestamp"`
	Mode       RunMode       `json:"mode"`
	Strictness Strictness    `json:"strictness,omitempty"`
	CorpusPath string        `json:"corpus_path"`
	CommitHash string        `json:"commit_hash,omitempty"`
	Metadata   *Metadata     `json:"metadata,omitempty"`
	Summary    Summary       `json:"summary"`
	Results    []CaseOutcome `json:"results"`
}

// Failed reports whether the run should exit non-zero.
func (r *TestReport) Failed() bool {
	return r.Summary.Failed > 0
}
