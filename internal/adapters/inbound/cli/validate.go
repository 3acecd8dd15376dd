package cli

import (
	"fmt"

	"github.com/brandguard/brandguard/internal/adapters/outbound/fixture"
	"github.com/brandguard/brandguard/internal/adapters/outbound/tui"
	"github.com/brandguard/brandguard/internal/application"
	"github.com/brandguard/brandguard/internal/domain/engine"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <request.yaml>",
		Short: "Validate a single asset",
		Long:  "Evaluate one {asset, context} document and print its violations, warnings and suggestions. Exits 1 when the asset is blocked.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := fixture.New()
			svc := application.NewValidateService(engine.New(nil), loader, nil, newLogger(cmd))

			req, err := loader.LoadRequest(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			result, err := svc.Validate(*req)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidationResult(req.Asset.Category, result))
			}

			if !result.Valid {
				return fmt.Errorf("asset blocked: %d violation(s), %d critical", len(result.Violations), result.CriticalCount())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	return cmd
}
