package domain

import (
	"fmt"
	"time"
)

const (
	DefaultCorpusPath   = "backend/tests/golden/golden-tests.yaml"
	DefaultReportsDir   = "reports/golden-tests"
	DefaultServiceName  = "brandguard"
	DefaultServiceAddr  = ":8080"
	DefaultProbeTimeout = 5 * time.Second
)

// ProjectConfig holds project-level configuration loaded from .brandguard.yaml.
type ProjectConfig struct {
	Golden  GoldenConfig  `yaml:"golden"  json:"golden"`
	Service ServiceConfig `yaml:"service" json:"service"`
}

// GoldenConfig drives the conformance harness.
type GoldenConfig struct {
	Mode       RunMode    `yaml:"mode"        json:"mode,omitempty"`
	CorpusPath string     `yaml:"corpus_path" json:"corpus_path,omitempty"`
	ReportsDir string     `yaml:"reports_dir" json:"reports_dir,omitempty"`
	Strictness Strictness `yaml:"strictness"  json:"strictness,omitempty"`
	Filter     string     `yaml:"filter"      json:"filter,omitempty"`
}

// ServiceConfig drives the HTTP service and its health probes.
// Dependencies maps a dependency name to the URL probed with GET.
type ServiceConfig struct {
	Name         string            `yaml:"name"          json:"name,omitempty"`
	Version      string            `yaml:"version"       json:"version,omitempty"`
	Addr         string            `yaml:"addr"          json:"addr,omitempty"`
	ProbeTimeout time.Duration     `yaml:"probe_timeout" json:"probe_timeout,omitempty"`
	Dependencies map[string]string `yaml:"dependencies"  json:"dependencies,omitempty"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Golden: GoldenConfig{
			Mode:       ModeSemantic,
			CorpusPath: DefaultCorpusPath,
			ReportsDir: DefaultReportsDir,
			Strictness: StrictnessCount,
		},
		Service: ServiceConfig{
			Name:         DefaultServiceName,
			Version:      "unknown",
			Addr:         DefaultServiceAddr,
			ProbeTimeout: DefaultProbeTimeout,
		},
	}
}

// Merge overlays the non-zero fields of override on c.
func (c ProjectConfig) Merge(override ProjectConfig) ProjectConfig {
	out := c
	g, og := &out.Golden, override.Golden
	if og.Mode != "" {
		g.Mode = og.Mode
	}
	if og.CorpusPath != "" {
		g.CorpusPath = og.CorpusPath
	}
	if og.ReportsDir != "" {
		g.ReportsDir = og.ReportsDir
	}
	if og.Strictness != "" {
		g.Strictness = og.Strictness
	}
	if og.Filter != "" {
		g.Filter = og.Filter
	}

	s, so := &out.Service, override.Service
	if so.Name != "" {
		s.Name = so.Name
	}
	if so.Version != "" {
		s.Version = so.Version
	}
	if so.Addr != "" {
		s.Addr = so.Addr
	}
	if so.ProbeTimeout != 0 {
		s.ProbeTimeout = so.ProbeTimeout
	}
	if len(so.Dependencies) > 0 {
		s.Dependencies = so.Dependencies
	}
	return out
}

// Validate checks the config for invalid values and returns a descriptive error.
// Zero values are accepted; they mean "use the default".
func (c ProjectConfig) Validate() error {
	// 1. mode must be known
	switch c.Golden.Mode {
	case "", ModeSemantic, ModeStructural:
	default:
		return fmt.Errorf("unknown golden.mode %q (valid: semantic, structural)", c.Golden.Mode)
	}

	// 2. strictness must be known
	switch c.Golden.Strictness {
	case "", StrictnessCount, StrictnessExact:
	default:
		return fmt.Errorf("unknown golden.strictness %q (valid: count, exact)", c.Golden.Strictness)
	}

	// 3. probe timeout cannot be negative
	if c.Service.ProbeTimeout < 0 {
		return fmt.Errorf("service.probe_timeout must be >= 0 (got %s)", c.Service.ProbeTimeout)
	}

	// 4. dependencies need both a name and a URL
	for name, url := range c.Service.Dependencies {
		if name == "" || url == "" {
			return fmt.Errorf("service.dependencies entry %q=%q must have a name and a url", name, url)
		}
	}

	return nil
}
