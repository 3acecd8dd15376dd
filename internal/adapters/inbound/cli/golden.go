package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/brandguard/brandguard/internal/adapters/outbound/fixture"
	"github.com/brandguard/brandguard/internal/adapters/outbound/gitinfo"
	"github.com/brandguard/brandguard/internal/adapters/outbound/history"
	"github.com/brandguard/brandguard/internal/adapters/outbound/tui"
	"github.com/brandguard/brandguard/internal/adapters/outbound/watcher"
	"github.com/brandguard/brandguard/internal/application"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/brandguard/brandguard/internal/domain/conformance"
	"github.com/brandguard/brandguard/internal/domain/engine"
	"github.com/spf13/cobra"
)

func newGoldenCmd() *cobra.Command {
	var (
		projectPath string
		structural  bool
		corpusPath  string
		reportsDir  string
		strictness  string
		filter      string
		jsonOutput  bool
		noReport    bool
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "golden",
		Short: "Run the golden test corpus against the rule engine",
		Long: "Load the golden test corpus, evaluate every case and compare the result with its expectation. " +
			"STRUCTURAL_ONLY=true or CI_FOUNDATION=true checks fixture shape only. Exits 1 when any case fails.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			absPath, cfg, err := loadConfig(projectPath)
			if err != nil {
				return err
			}

			g := cfg.Golden
			if structural {
				g.Mode = domain.ModeStructural
			}
			if cmd.Flags().Changed("corpus") {
				g.CorpusPath = corpusPath
			}
			if cmd.Flags().Changed("reports-dir") {
				g.ReportsDir = reportsDir
			}
			if cmd.Flags().Changed("strictness") {
				st, err := conformance.ParseStrictness(strictness)
				if err != nil {
					return err
				}
				g.Strictness = st
			}
			if cmd.Flags().Changed("filter") {
				g.Filter = filter
			}

			var writer domain.ReportWriter
			if !noReport {
				writer = history.New(anchor(absPath, g.ReportsDir))
			}
			svc := application.NewGoldenService(fixture.New(), engine.New(nil), writer, gitinfo.New(), logger)
			opts := application.RunOptions{
				Mode:        g.Mode,
				CorpusPath:  anchor(absPath, g.CorpusPath),
				Strictness:  g.Strictness,
				Filter:      g.Filter,
				ProjectPath: absPath,
			}

			runOnce := func() error {
				res, err := svc.Run(opts)
				if err != nil {
					return err
				}
				if jsonOutput {
					if err := renderJSON(cmd, res.Report); err != nil {
						return err
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderGoldenReport(res.Report, res.ReportPath))
				}
				if res.Report.Failed() {
					return fmt.Errorf("%d of %d golden tests failed", res.Report.Summary.Failed, res.Report.Summary.Total)
				}
				return nil
			}

			if !watch {
				return runOnce()
			}
			return watchCorpus(cmd.Context(), opts.CorpusPath, logger, runOnce)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root holding .brandguard.yaml")
	cmd.Flags().BoolVar(&structural, "structural", false, "Check fixture structure only")
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Golden tests YAML (overrides GOLDEN_TESTS_PATH)")
	cmd.Flags().StringVar(&reportsDir, "reports-dir", "", "Directory for JSON reports")
	cmd.Flags().StringVar(&strictness, "strictness", "", "Diff policy: count or exact")
	cmd.Flags().StringVar(&filter, "filter", "", "Only run cases whose id matches this glob, e.g. fca_*")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "Do not write report files")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-run whenever the corpus changes")

	return cmd
}

// watchCorpus runs once, then again after every debounced change, until
// interrupted. Failed runs are logged, not returned.
func watchCorpus(ctx context.Context, path string, logger *slog.Logger, run func() error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(path, 0, logger)
	if err != nil {
		return err
	}
	defer w.Stop()
	w.Start(ctx)

	if err := run(); err != nil {
		logger.Warn("golden run failed", "error", err)
	}
	for range w.Changes() {
		if err := run(); err != nil {
			logger.Warn("golden run failed", "error", err)
		}
	}
	return nil
}
