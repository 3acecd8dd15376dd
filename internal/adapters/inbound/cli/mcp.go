package cli

import (
	"log/slog"

	mcpadapter "github.com/brandguard/brandguard/internal/adapters/inbound/mcp"
	"github.com/brandguard/brandguard/internal/adapters/outbound/fixture"
	"github.com/brandguard/brandguard/internal/adapters/outbound/gitinfo"
	"github.com/brandguard/brandguard/internal/adapters/outbound/history"
	"github.com/brandguard/brandguard/internal/application"
	"github.com/brandguard/brandguard/internal/domain/engine"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the BrandGuard MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start BrandGuard MCP server (stdio)",
		Long:  "Start the BrandGuard MCP server using stdio transport, so assistants can evaluate assets, list rules and run the golden corpus.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newMCPServer(projectPath, newLogger(cmd))
			if err != nil {
				return err
			}
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root holding .brandguard.yaml")

	return cmd
}

// newMCPServer wires the services for projectPath. The golden tool runs the
// configured corpus and writes reports under the configured reports dir.
func newMCPServer(projectPath string, logger *slog.Logger) (*server.MCPServer, error) {
	absPath, cfg, err := loadConfig(projectPath)
	if err != nil {
		return nil, err
	}

	eng := engine.New(nil)
	golden := cfg.Golden
	golden.CorpusPath = anchor(absPath, golden.CorpusPath)

	return mcpadapter.NewBrandGuardMCPServer(version, mcpadapter.Services{
		Validator: application.NewValidateService(eng, fixture.New(), nil, logger),
		Golden: application.NewGoldenService(fixture.New(), eng,
			history.New(anchor(absPath, golden.ReportsDir)), gitinfo.New(), logger),
		Rules:  eng.Rules(),
		Config: golden,
	}), nil
}
