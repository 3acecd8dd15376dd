package cli

import (
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "brandguard",
		Short:         "Brand and regulatory compliance checks for marketing assets",
		Long:          "BrandGuard validates marketing assets against brand guidelines, platform limits and FCA promotion rules, and runs the golden test corpus that pins the rule engine's behaviour.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging on stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGoldenCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// NewMCPServerForTest builds the MCP server `mcp serve` would run for projectPath.
func NewMCPServerForTest(projectPath string) (*server.MCPServer, error) {
	return newMCPServer(projectPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func Execute() error {
	return newRootCmd().Execute()
}
