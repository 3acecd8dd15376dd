package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/brandguard/brandguard/internal/adapters/outbound/config"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/spf13/cobra"
)

// newLogger writes text logs to stderr: warnings by default, everything
// with --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves defaults, .brandguard.yaml and the environment for
// projectPath. Relative corpus and report paths are anchored at projectPath.
func loadConfig(projectPath string) (string, domain.ProjectConfig, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return "", domain.ProjectConfig{}, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.Resolve(config.New(), absPath)
	if err != nil {
		return "", domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return absPath, cfg, nil
}

func anchor(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
