package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/brandguard/brandguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "brandguard-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "brandguard")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/brandguard")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func testdata(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata", name))
	return abs
}

func run(t *testing.T, env []string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Golden Tests ---

func TestE2E_GoldenPasses(t *testing.T) {
	reports := t.TempDir()
	out, code := run(t, []string{"STRUCTURAL_ONLY=", "CI_FOUNDATION="},
		"golden", "--corpus", testdata("golden/golden-tests.yaml"), "--reports-dir", reports, "--json")
	assert.Equal(t, 0, code, out)

	var report domain.TestReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 14, report.Summary.Total)
	assert.Equal(t, 14, report.Summary.Passed)

	latest, err := os.ReadFile(filepath.Join(reports, "latest.json"))
	require.NoError(t, err)
	var persisted domain.TestReport
	require.NoError(t, json.Unmarshal(latest, &persisted))
	assert.Equal(t, report.RunID, persisted.RunID)
}

func TestE2E_GoldenFailureExitsOne(t *testing.T) {
	corpus := filepath.Join(t.TempDir(), "golden.yaml")
	require.NoError(t, os.WriteFile(corpus, []byte(`test_cases:
  - id: tweet_bad
    name: Expectation that no longer holds
    category: platform.twitter
    input:
      content: { text: long, character_count: 400 }
    context:
      brand_genome: {}
    expected:
      valid: true
`), 0644))

	out, code := run(t, []string{"STRUCTURAL_ONLY=", "CI_FOUNDATION="}, "golden", "--corpus", corpus, "--no-report")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "golden tests failed")

	// Structural mode never evaluates rules, so the same corpus passes.
	_, code = run(t, []string{"STRUCTURAL_ONLY=true"}, "golden", "--corpus", corpus, "--no-report")
	assert.Equal(t, 0, code)
}

func TestE2E_GoldenMissingCorpus(t *testing.T) {
	out, code := run(t, nil, "golden", "--corpus", filepath.Join(t.TempDir(), "missing.yaml"), "--no-report")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "loading golden tests")
}

func TestE2E_EmptyCorpusSucceeds(t *testing.T) {
	corpus := filepath.Join(t.TempDir(), "golden.yaml")
	require.NoError(t, os.WriteFile(corpus, []byte("test_cases: []\n"), 0644))
	_, code := run(t, nil, "golden", "--corpus", corpus, "--no-report")
	assert.Equal(t, 0, code)
}

// --- Validate Tests ---

func TestE2E_ValidateBlocked(t *testing.T) {
	out, code := run(t, nil, "validate", testdata("assets/fca-promotion.yaml"), "--json")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "fca_risk_warning_required")
	assert.Contains(t, out, "fca_prohibited_claim")
}

func TestE2E_ValidatePublishable(t *testing.T) {
	_, code := run(t, nil, "validate", testdata("assets/linkedin-post.yaml"))
	assert.Equal(t, 0, code)
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, nil, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "brandguard")
}
