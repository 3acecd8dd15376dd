package cli

import (
	"fmt"

	"github.com/brandguard/brandguard/internal/adapters/outbound/tui"
	"github.com/brandguard/brandguard/internal/domain/rules"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var (
		category   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the compliance rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := rules.Default()
			list := catalog.Rules()
			if category != "" {
				list = catalog.Matching(category)
			}
			if jsonOutput {
				return renderJSON(cmd, list)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(list))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only rules that fire for this asset category")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print rules as JSON")
	return cmd
}
