package cli

import (
	"fmt"

	"github.com/brandguard/brandguard/internal/adapters/outbound/history"
	"github.com/brandguard/brandguard/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		projectPath string
		limit       int
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previous golden test runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, cfg, err := loadConfig(projectPath)
			if err != nil {
				return err
			}
			reports, err := history.New(anchor(absPath, cfg.Golden.ReportsDir)).Recent(limit)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if jsonOutput {
				return renderJSON(cmd, reports)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(reports))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root holding .brandguard.yaml")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print reports as JSON")
	return cmd
}
