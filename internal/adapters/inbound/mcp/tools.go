package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brandguard/brandguard/internal/application"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/brandguard/brandguard/internal/domain/conformance"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

func registerTools(s *server.MCPServer, svc Services) {
	// 1. brandguard_evaluate
	s.AddTool(
		mcplib.NewTool("brandguard_evaluate",
			mcplib.WithDescription("Evaluate one marketing asset against its brand and campaign context. Returns valid, violations, warnings and suggestions."),
			mcplib.WithString("request",
				mcplib.Required(),
				mcplib.Description("YAML or JSON document with 'asset' and 'context' (brand_genome, campaign_blueprint)"),
			),
		),
		handleEvaluate(svc.Validator),
	)

	// 2. brandguard_rules
	s.AddTool(
		mcplib.NewTool("brandguard_rules",
			mcplib.WithDescription("List the compliance rules, optionally only those that fire for a category"),
			mcplib.WithString("category", mcplib.Description("Asset category, e.g. compliance.fca or platform.twitter")),
		),
		handleRules(svc),
	)

	// 3. brandguard_golden
	if svc.Golden != nil {
		s.AddTool(
			mcplib.NewTool("brandguard_golden",
				mcplib.WithDescription("Run the golden test corpus and return the report"),
				mcplib.WithBoolean("structural", mcplib.Description("Check fixture structure only, without evaluating rules")),
				mcplib.WithString("filter", mcplib.Description("Glob over case ids, e.g. fca_*")),
				mcplib.WithString("strictness", mcplib.Description("count (default) or exact")),
			),
			handleGolden(svc),
		)
	}
}

func handleEvaluate(validator *application.ValidateService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		doc, err := request.RequireString("request")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var req domain.ValidationRequest
		if err := yaml.Unmarshal([]byte(doc), &req); err != nil {
			return errorResult(fmt.Sprintf("parsing request: %v", err)), nil
		}

		result, err := validator.Validate(req)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(result)
	}
}

func handleRules(svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		category := request.GetString("category", "")
		if category == "" {
			return jsonResult(svc.Rules)
		}
		matching := svc.Rules[:0:0]
		for _, r := range svc.Rules {
			if r.Matches(category) {
				matching = append(matching, r)
			}
		}
		return jsonResult(matching)
	}
}

func handleGolden(svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		opts := application.RunOptions{
			Mode:       svc.Config.Mode,
			CorpusPath: svc.Config.CorpusPath,
			Strictness: svc.Config.Strictness,
			Filter:     request.GetString("filter", svc.Config.Filter),
		}
		if request.GetBool("structural", false) {
			opts.Mode = domain.ModeStructural
		}
		if raw := request.GetString("strictness", ""); raw != "" {
			st, err := conformance.ParseStrictness(raw)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			opts.Strictness = st
		}

		res, err := svc.Golden.Run(opts)
		if err != nil {
			return errorResult(fmt.Sprintf("golden run failed: %v", err)), nil
		}
		return jsonResult(res.Report)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
