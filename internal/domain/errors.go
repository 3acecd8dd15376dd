package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Contract errors returned by the engine before any rule runs.
var (
	ErrEmptyCategory = errors.New("asset category must not be empty")
	ErrMissingBrand  = errors.New("evaluation context has no brand_genome")
)

// ErrDegraded is returned (or wrapped) by a probe whose dependency works
// but not fully.
var ErrDegraded = errors.New("degraded")

// FixtureFormatError means the corpus cannot be used at all. It aborts the run.
type FixtureFormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FixtureFormatError) Error() string {
	msg := "invalid golden tests format"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FixtureFormatError) Unwrap() error { return e.Err }

// RuleEvaluationFault wraps an unexpected failure while evaluating one case.
// The harness records it against that case and moves on.
type RuleEvaluationFault struct {
	CaseID string
	Err    error
}

func (e *RuleEvaluationFault) Error() string {
	return fmt.Sprintf("evaluating case %s: %v", e.CaseID, e.Err)
}

func (e *RuleEvaluationFault) Unwrap() error { return e.Err }

// StructuralFieldError lists what is wrong with one fixture's shape.
type StructuralFieldError struct {
	CaseID   string
	Problems []string
}

func (e *StructuralFieldError) Error() string {
	return fmt.Sprintf("case %s: %s", e.CaseID, strings.Join(e.Problems, ", "))
}

// DependencyProbeError records a failed or timed-out health probe.
type DependencyProbeError struct {
	Dependency string
	Err        error
}

func (e *DependencyProbeError) Error() string {
	return fmt.Sprintf("dependency %s: %v", e.Dependency, e.Err)
}

func (e *DependencyProbeError) Unwrap() error { return e.Err }
