package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brandguard/brandguard/internal/domain"
	"github.com/spf13/cobra"
)

const configFileName = ".brandguard.yaml"

func newInitCmd() *cobra.Command {
	var (
		corpusPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .brandguard.yaml configuration file",
		Long:  "Create a .brandguard.yaml with the default golden test and service settings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(corpusPath)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", domain.DefaultCorpusPath, "Golden tests YAML, relative to the project root")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .brandguard.yaml")

	return cmd
}

func generateConfig(corpusPath string) string {
	cfg := domain.DefaultConfig()
	if corpusPath == "" {
		corpusPath = cfg.Golden.CorpusPath
	}

	return fmt.Sprintf(`# BrandGuard configuration
# Environment variables (STRUCTURAL_ONLY, GOLDEN_TESTS_PATH, ...) override these values.

golden:
  mode: %s
  corpus_path: %s
  reports_dir: %s
  strictness: %s
  # filter: "fca_*"

service:
  name: %s
  addr: "%s"
  probe_timeout: %s
  # dependencies:
  #   asset-store: http://localhost:9000/health
`,
		cfg.Golden.Mode,
		corpusPath,
		cfg.Golden.ReportsDir,
		cfg.Golden.Strictness,
		cfg.Service.Name,
		cfg.Service.Addr,
		cfg.Service.ProbeTimeout,
	)
}
