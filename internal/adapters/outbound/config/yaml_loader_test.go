package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	appconfig "github.com/brandguard/brandguard/internal/adapters/outbound/config"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".brandguard.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := appconfig.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
golden:
  corpus_path: testdata/golden/golden-tests.yaml
  strictness: exact
service:
  probe_timeout: 2s
  dependencies:
    brand-store: http://brand-store:8080/health
`)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "testdata/golden/golden-tests.yaml", cfg.Golden.CorpusPath)
	assert.Equal(t, domain.StrictnessExact, cfg.Golden.Strictness)
	assert.Equal(t, domain.DefaultReportsDir, cfg.Golden.ReportsDir, "unset keys keep defaults")
	assert.Equal(t, domain.ModeSemantic, cfg.Golden.Mode)
	assert.Equal(t, 2*time.Second, cfg.Service.ProbeTimeout)
	assert.Equal(t, "http://brand-store:8080/health", cfg.Service.Dependencies["brand-store"])
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .brandguard.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "golden:\n  strictness: fuzzy\n")

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .brandguard.yaml")
	assert.Contains(t, err.Error(), "fuzzy")
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "golden:\n  corpus_path: from-file.yaml\n")
	t.Setenv("GOLDEN_TESTS_PATH", "from-env.yaml")
	t.Setenv("STRUCTURAL_ONLY", "true")
	t.Setenv("APP_VERSION", "1.4.2")
	t.Setenv("BRANDGUARD_HTTP_DEPENDENCIES", "store=http://store/health,cdn=https://cdn/health")

	cfg, err := appconfig.Resolve(appconfig.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", cfg.Golden.CorpusPath)
	assert.Equal(t, domain.ModeStructural, cfg.Golden.Mode)
	assert.Equal(t, "1.4.2", cfg.Service.Version)
	assert.Equal(t, map[string]string{
		"store": "http://store/health",
		"cdn":   "https://cdn/health",
	}, cfg.Service.Dependencies)
}

func TestResolve_InvalidEnv(t *testing.T) {
	t.Setenv("BRANDGUARD_PROBE_TIMEOUT", "soon")
	_, err := appconfig.Resolve(appconfig.New(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestEnv_Structural(t *testing.T) {
	tests := []struct {
		env  appconfig.Env
		want bool
	}{
		{appconfig.Env{StructuralOnly: "true"}, true},
		{appconfig.Env{CIFoundation: "true"}, true},
		{appconfig.Env{StructuralOnly: "1"}, false},
		{appconfig.Env{StructuralOnly: "TRUE"}, false},
		{appconfig.Env{}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.env.Structural(), "%+v", tt.env)
	}
}
