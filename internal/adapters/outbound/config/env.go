package config

import (
	"fmt"
	"time"

	"github.com/brandguard/brandguard/internal/domain"
	"github.com/caarlos0/env/v11"
)

// Env is the environment surface. The two mode switches are compared to the
// literal "true"; "1" or "TRUE" leave the harness in semantic mode.
type Env struct {
	StructuralOnly string `env:"STRUCTURAL_ONLY"`
	CIFoundation   string `env:"CI_FOUNDATION"`
	CorpusPath     string `env:"GOLDEN_TESTS_PATH"`
	ReportsDir     string `env:"GOLDEN_REPORTS_DIR"`
	Strictness     string `env:"GOLDEN_STRICTNESS"`

	ServiceName  string            `env:"SERVICE_NAME"`
	Version      string            `env:"APP_VERSION"`
	Addr         string            `env:"BRANDGUARD_ADDR"`
	ProbeTimeout time.Duration     `env:"BRANDGUARD_PROBE_TIMEOUT"`
	Dependencies map[string]string `env:"BRANDGUARD_HTTP_DEPENDENCIES" envKeyValSeparator:"="`
}

// ParseEnv parses environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Structural reports whether either mode switch is set.
func (e Env) Structural() bool {
	return e.StructuralOnly == "true" || e.CIFoundation == "true"
}

// Overlay returns the non-empty environment values as a config layer.
func (e Env) Overlay() domain.ProjectConfig {
	var cfg domain.ProjectConfig
	if e.Structural() {
		cfg.Golden.Mode = domain.ModeStructural
	}
	cfg.Golden.CorpusPath = e.CorpusPath
	cfg.Golden.ReportsDir = e.ReportsDir
	cfg.Golden.Strictness = domain.Strictness(e.Strictness)
	cfg.Service = domain.ServiceConfig{
		Name:         e.ServiceName,
		Version:      e.Version,
		Addr:         e.Addr,
		ProbeTimeout: e.ProbeTimeout,
		Dependencies: e.Dependencies,
	}
	return cfg
}

// Resolve layers defaults, .brandguard.yaml in projectPath, then the
// environment. Flags are applied by the caller on top of the result.
func Resolve(loader domain.ConfigLoader, projectPath string) (domain.ProjectConfig, error) {
	cfg, err := loader.Load(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, err
	}

	var e Env
	if err := ParseEnv(&e); err != nil {
		return domain.ProjectConfig{}, err
	}
	overlay := e.Overlay()
	if err := overlay.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg.Merge(overlay), nil
}
