package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brandguard/brandguard/internal/adapters/inbound/cli"
	"github.com/brandguard/brandguard/internal/adapters/outbound/config"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".brandguard.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "corpus_path: backend/tests/golden/golden-tests.yaml")
	assert.Contains(t, string(data), "strictness: count")
}

func TestInitCmd_GeneratedConfigLoads(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--corpus", "fixtures/golden.yaml"})
	require.NoError(t, root.Execute())

	cfg, err := config.New().Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "fixtures/golden.yaml", cfg.Golden.CorpusPath)
	assert.Equal(t, domain.DefaultProbeTimeout, cfg.Service.ProbeTimeout)
	assert.Equal(t, domain.ModeSemantic, cfg.Golden.Mode)
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".brandguard.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".brandguard.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".brandguard.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "golden:")
	assert.NotEqual(t, "old", string(data))
}
