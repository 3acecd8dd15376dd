package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/brandguard/brandguard/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleCorpus  = "../../../../testdata/golden/golden-tests.yaml"
	fcaPromotion  = "../../../../testdata/assets/fca-promotion.yaml"
	linkedInPost  = "../../../../testdata/assets/linkedin-post.yaml"
	failingCorpus = `test_cases:
  - id: color_bad
    name: Expectation that no longer holds
    category: colors
    input:
      colors_used: ["#00FF00"]
    context:
      brand_genome:
        visual_identity:
          colors:
            primary: { hex: "#FF5A1F" }
    expected:
      valid: true
`
)

// clearEnv keeps the developer's shell from switching modes under the tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"STRUCTURAL_ONLY", "CI_FOUNDATION", "GOLDEN_TESTS_PATH", "GOLDEN_REPORTS_DIR", "GOLDEN_STRICTNESS"} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func absPath(t *testing.T, p string) string {
	t.Helper()
	abs, err := filepath.Abs(p)
	require.NoError(t, err)
	return abs
}

func TestGoldenCommand_PassesOnSampleCorpus(t *testing.T) {
	clearEnv(t)
	reports := t.TempDir()

	out, err := run(t, "golden", "--corpus", absPath(t, sampleCorpus), "--reports-dir", reports, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"mode": "semantic"`)
	assert.Contains(t, out, `"failed": 0`)

	_, err = os.Stat(filepath.Join(reports, "latest.json"))
	assert.NoError(t, err)
}

func TestGoldenCommand_ExactStrictnessTUI(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "golden", "--corpus", absPath(t, sampleCorpus), "--no-report", "--strictness", "exact")
	require.NoError(t, err)
	assert.Contains(t, out, "All golden tests passed.")
}

func TestGoldenCommand_FailureExitsNonZero(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	corpus := filepath.Join(dir, "golden.yaml")
	require.NoError(t, os.WriteFile(corpus, []byte(failingCorpus), 0644))

	out, err := run(t, "golden", "--corpus", corpus, "--no-report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 golden tests failed")
	assert.Contains(t, out, "color_bad")
}

func TestGoldenCommand_StructuralFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CI_FOUNDATION", "true")
	dir := t.TempDir()
	corpus := filepath.Join(dir, "golden.yaml")
	require.NoError(t, os.WriteFile(corpus, []byte(failingCorpus), 0644))

	out, err := run(t, "golden", "--corpus", corpus, "--no-report", "--json")
	require.NoError(t, err, "structural mode does not evaluate rules")
	assert.Contains(t, out, `"mode": "structural"`)
}

func TestGoldenCommand_EnvCorpusPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOLDEN_TESTS_PATH", absPath(t, sampleCorpus))
	_, err := run(t, "golden", "--no-report", "--filter", "twitter_*")
	assert.NoError(t, err)
}

func TestGoldenCommand_Errors(t *testing.T) {
	clearEnv(t)
	_, err := run(t, "golden", "--corpus", absPath(t, sampleCorpus), "--strictness", "fuzzy")
	assert.ErrorContains(t, err, "unknown strictness")

	_, err = run(t, "golden", "--corpus", filepath.Join(t.TempDir(), "missing.yaml"), "--no-report")
	assert.ErrorContains(t, err, "loading golden tests")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", fcaPromotion)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asset blocked: 2 violation(s), 2 critical")
	assert.Contains(t, out, "BLOCKED")

	out, err = run(t, "validate", linkedInPost, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)
}

func TestRulesCommand(t *testing.T) {
	out, err := run(t, "rules", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "brand_color_check"`)
	assert.Contains(t, out, `"opt_in": true`)

	out, err = run(t, "rules", "--category", "compliance.fca")
	require.NoError(t, err)
	assert.Contains(t, out, "fca_risk_warning_required")
	assert.NotContains(t, out, "brand_font_check")
}

func TestHistoryCommand(t *testing.T) {
	clearEnv(t)
	reports := t.TempDir()
	t.Setenv("GOLDEN_REPORTS_DIR", reports)

	out, err := run(t, "history", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No golden test reports found.")

	_, err = run(t, "golden", "--corpus", absPath(t, sampleCorpus))
	require.NoError(t, err)

	out, err = run(t, "history", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Golden Test History")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "brandguard dev")
}

func TestServeCommandExists(t *testing.T) {
	_, err := run(t, "serve", "--help")
	assert.NoError(t, err)
}
