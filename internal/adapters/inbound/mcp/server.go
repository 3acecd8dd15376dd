package mcp

import (
	"github.com/brandguard/brandguard/internal/application"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/brandguard/brandguard/internal/domain/rules"
	"github.com/mark3labs/mcp-go/server"
)

// Services is what the MCP tools call into. Golden may be nil, in which case
// brandguard_golden is not registered.
type Services struct {
	Validator *application.ValidateService
	Golden    *application.GoldenService
	Rules     []rules.Rule
	Config    domain.GoldenConfig
}

// NewBrandGuardMCPServer creates an MCP server with the brandguard tools and
// resources registered.
func NewBrandGuardMCPServer(version string, svc Services) *server.MCPServer {
	s := server.NewMCPServer(
		"brandguard",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
