package application

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/brandguard/brandguard/internal/domain/conformance"
	"github.com/google/uuid"
)

// Evaluator is the engine boundary the harness consumes.
type Evaluator interface {
	Evaluate(asset domain.Asset, ectx domain.EvaluationContext) (*domain.ValidationResult, error)
}

// RunOptions selects what a harness run does. Zero values fall back to
// semantic mode, count strictness and no filter.
type RunOptions struct {
	Mode        domain.RunMode
	CorpusPath  string
	Strictness  domain.Strictness
	Filter      string // doublestar pattern matched against case ids
	ProjectPath string // where to look up the commit hash
}

// RunResult is a finished run. ReportPath is empty when no writer is set.
type RunResult struct {
	Report     *domain.TestReport
	ReportPath string
}

// GoldenService orchestrates a harness run:
// load corpus → check structure or evaluate → diff → summarize → persist.
type GoldenService struct {
	loader    domain.FixtureLoader
	evaluator Evaluator
	writer    domain.ReportWriter
	git       domain.GitInfo
	logger    *slog.Logger
	now       func() time.Time
}

func NewGoldenService(
	loader domain.FixtureLoader,
	evaluator Evaluator,
	writer domain.ReportWriter,
	git domain.GitInfo,
	logger *slog.Logger,
) *GoldenService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoldenService{
		loader:    loader,
		evaluator: evaluator,
		writer:    writer,
		git:       git,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock used for report timestamps.
func (s *GoldenService) WithClock(now func() time.Time) *GoldenService {
	s.now = now
	return s
}

// Run executes one harness pass. Only an unusable corpus, a bad filter or a
// failed report write return an error; case failures are in the report.
func (s *GoldenService) Run(opts RunOptions) (*RunResult, error) {
	if opts.Mode == "" {
		opts.Mode = domain.ModeSemantic
	}
	if opts.Strictness == "" {
		opts.Strictness = domain.StrictnessCount
	}
	if opts.Filter != "" && !doublestar.ValidatePattern(opts.Filter) {
		return nil, fmt.Errorf("invalid filter pattern %q", opts.Filter)
	}

	// 1. Load corpus
	corpus, err := s.loader.Load(opts.CorpusPath)
	if err != nil {
		return nil, fmt.Errorf("loading golden tests: %w", err)
	}
	s.logger.Info("loaded golden tests", "path", opts.CorpusPath, "cases", len(corpus.Cases), "mode", opts.Mode)

	if corpus.Metadata.CountMismatch(len(corpus.Cases)) {
		s.logger.Warn("metadata count mismatch",
			"declared", corpus.Metadata.TotalTestCases,
			"actual", len(corpus.Cases))
	}

	report := &domain.TestReport{
		RunID:      uuid.Must(uuid.NewV7()).String(),
		Timestamp:  s.now().UTC(),
		Mode:       opts.Mode,
		CorpusPath: opts.CorpusPath,
		CommitHash: s.commitHash(opts.ProjectPath),
		Metadata:   corpus.Metadata,
		Results:    []domain.CaseOutcome{},
	}

	// 2. Run cases
	switch opts.Mode {
	case domain.ModeStructural:
		s.runStructural(report, corpus, opts.Filter)
	case domain.ModeSemantic:
		report.Strictness = opts.Strictness
		s.runSemantic(report, corpus, opts)
	default:
		return nil, fmt.Errorf("unknown run mode %q", opts.Mode)
	}

	s.logger.Info("golden run finished",
		"run_id", report.RunID,
		"total", report.Summary.Total,
		"passed", report.Summary.Passed,
		"failed", report.Summary.Failed,
		"skipped", report.Summary.Skipped)

	// 3. Persist
	result := &RunResult{Report: report}
	if s.writer != nil {
		path, err := s.writer.Write(report)
		if err != nil {
			return nil, fmt.Errorf("saving report: %w", err)
		}
		result.ReportPath = path
	}
	return result, nil
}

func (s *GoldenService) runStructural(report *domain.TestReport, corpus *domain.Corpus, filter string) {
	for _, c := range corpus.Cases {
		if !selected(filter, c) {
			report.Summary.Skip()
			report.Results = append(report.Results, skippedOutcome(c))
			continue
		}

		var problems, hints []string
		if c.RawErr != nil {
			problems = []string{c.RawErr.Error()}
		} else {
			problems = conformance.ValidateStructure(c.Raw)
			hints = conformance.LintInputKeys(c.Raw)
		}
		for _, h := range hints {
			s.logger.Warn("fixture lint", "case", c.Label(), "hint", h)
		}

		passed := len(problems) == 0
		if !passed {
			s.logger.Debug("structural check failed", "error", (&domain.StructuralFieldError{CaseID: c.Label(), Problems: problems}).Error())
		}
		report.Summary.Record(passed)
		report.Results = append(report.Results, domain.CaseOutcome{
			ID:               c.Label(),
			Name:             c.Name,
			Category:         c.Category,
			Passed:           passed,
			StructuralErrors: problems,
			Hints:            hints,
		})
	}
}

// runSemantic evaluates groups in sorted category order and cases in corpus
// order within a group.
func (s *GoldenService) runSemantic(report *domain.TestReport, corpus *domain.Corpus, opts RunOptions) {
	groups := make(map[string][]domain.FixtureCase)
	var keys []string
	for _, c := range corpus.Cases {
		k := c.GroupKey()
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], c)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, c := range groups[k] {
			if !selected(opts.Filter, c) {
				report.Summary.Skip()
				report.Results = append(report.Results, skippedOutcome(c))
				continue
			}
			outcome := s.evaluateCase(c, opts.Strictness)
			report.Summary.Record(outcome.Passed)
			report.Results = append(report.Results, outcome)
			s.logger.Debug("case evaluated", "case", outcome.ID, "category", k, "passed", outcome.Passed)
		}
	}
}

// evaluateCase is the per-case fault boundary: errors and panics from the
// evaluator become a failed outcome and never escape.
func (s *GoldenService) evaluateCase(c domain.FixtureCase, strictness domain.Strictness) (out domain.CaseOutcome) {
	out = domain.CaseOutcome{ID: c.Label(), Name: c.Name, Category: c.GroupKey()}

	defer func() {
		if r := recover(); r != nil {
			fault := &domain.RuleEvaluationFault{CaseID: out.ID, Err: fmt.Errorf("panic: %v", r)}
			s.logger.Error("rule evaluation fault", "case", out.ID, "error", fault)
			out.Passed = false
			out.Actual = nil
			out.Mismatches = nil
			out.Error = fault.Error()
		}
	}()

	if c.DecodeErr != nil {
		out.Error = c.DecodeErr.Error()
		return out
	}

	actual, err := s.evaluator.Evaluate(c.Asset(), c.Context)
	if err != nil {
		out.Error = (&domain.RuleEvaluationFault{CaseID: out.ID, Err: err}).Error()
		return out
	}

	expected := c.Expected
	out.Actual = actual
	out.Expected = &expected
	out.Mismatches = conformance.Compare(actual, expected, strictness)
	out.Passed = len(out.Mismatches) == 0
	return out
}

func (s *GoldenService) commitHash(projectPath string) string {
	if s.git == nil {
		return ""
	}
	if projectPath == "" {
		projectPath = "."
	}
	if !s.git.IsGitRepo(projectPath) {
		s.logger.Debug("project is not a git repository; report has no commit", "path", projectPath)
		return ""
	}
	hash, err := s.git.CommitHash(projectPath)
	if err != nil {
		s.logger.Debug("no commit hash for report", "error", err)
		return ""
	}
	return hash
}

func selected(filter string, c domain.FixtureCase) bool {
	if filter == "" {
		return true
	}
	ok, err := doublestar.Match(filter, c.Label())
	return err == nil && ok
}

func skippedOutcome(c domain.FixtureCase) domain.CaseOutcome {
	return domain.CaseOutcome{ID: c.Label(), Name: c.Name, Category: c.GroupKey(), Skipped: true}
}
