package fixture_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/brandguard/brandguard/internal/adapters/outbound/fixture"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCorpus = "../../../../testdata/golden/golden-tests.yaml"

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golden-tests.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestYAMLLoader_SampleCorpus(t *testing.T) {
	corpus, err := fixture.New().Load(sampleCorpus)
	require.NoError(t, err)

	require.NotNil(t, corpus.Metadata)
	assert.Equal(t, "1.0.0", corpus.Metadata.Version)
	assert.Equal(t, len(corpus.Cases), corpus.Metadata.TotalTestCases)

	first := corpus.Cases[0]
	assert.Equal(t, "color_001", first.ID)
	assert.Equal(t, "colors", first.Category)
	assert.Equal(t, []string{"#FF5A1F", "#FFFFFF", "#2EC4B6"}, first.Input.ColorsUsed)
	require.NotNil(t, first.Context.Brand)
	assert.Equal(t, "#FF5A1F", first.Context.Brand.VisualIdentity.Colors.Primary.Hex)
	require.NotNil(t, first.Expected.Valid)
	assert.True(t, *first.Expected.Valid)
	assert.NoError(t, first.DecodeErr)
	assert.Equal(t, "color_001", first.Raw["id"])

	for i, c := range corpus.Cases {
		assert.Equal(t, i, c.Index)
	}
}

func TestYAMLLoader_MissingFile(t *testing.T) {
	_, err := fixture.New().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestYAMLLoader_MissingTestCases(t *testing.T) {
	for name, content := range map[string]string{
		"absent":     "metadata:\n  version: 1\n",
		"not a list": "test_cases:\n  id: x\n",
		"empty file": "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fixture.New().Load(writeCorpus(t, content))
			var ffe *domain.FixtureFormatError
			require.ErrorAs(t, err, &ffe)
			assert.Equal(t, "missing test_cases array", ffe.Reason)
		})
	}
}

func TestYAMLLoader_UnparseableYAML(t *testing.T) {
	_, err := fixture.New().Load(writeCorpus(t, "test_cases: [\n"))
	var ffe *domain.FixtureFormatError
	require.ErrorAs(t, err, &ffe)
	assert.Contains(t, err.Error(), "unparseable YAML")
}

func TestYAMLLoader_EmptyCorpus(t *testing.T) {
	corpus, err := fixture.New().Load(writeCorpus(t, "test_cases: []\n"))
	require.NoError(t, err)
	assert.Empty(t, corpus.Cases)
	assert.Nil(t, corpus.Metadata)
}

func TestYAMLLoader_TypedDecodeFailureIsKeptOnCase(t *testing.T) {
	corpus, err := fixture.New().Load(writeCorpus(t, `
test_cases:
  - id: bad_valid
    name: string instead of bool
    category: colors
    input: {}
    expected:
      valid: "true"
`))
	require.NoError(t, err)
	require.Len(t, corpus.Cases, 1)

	c := corpus.Cases[0]
	assert.Error(t, c.DecodeErr)
	assert.Equal(t, "bad_valid", c.ID, "fields that decoded are kept")
	assert.Equal(t, "true", c.Raw["expected"].(map[string]any)["valid"])
}

func TestYAMLLoader_ScalarCaseHasEmptyRaw(t *testing.T) {
	corpus, err := fixture.New().Load(writeCorpus(t, "test_cases:\n  - just a string\n"))
	require.NoError(t, err)
	require.Len(t, corpus.Cases, 1)
	assert.Empty(t, corpus.Cases[0].Raw)
	assert.ErrorContains(t, corpus.Cases[0].RawErr, "test case 0 (line 2) is not a mapping")
	assert.Error(t, corpus.Cases[0].DecodeErr)
	assert.Equal(t, "test_0", corpus.Cases[0].Label())
}

func TestYAMLLoader_UnreadableRecordKeepsRawError(t *testing.T) {
	corpus, err := fixture.New().Load(writeCorpus(t, `
test_cases:
  - id: dup
    id: dup_again
    name: duplicate key
`))
	require.NoError(t, err)
	require.Len(t, corpus.Cases, 1)
	assert.ErrorContains(t, corpus.Cases[0].RawErr, "reading test case 0")
}

func TestYAMLLoader_WellFormedCaseHasNoRawError(t *testing.T) {
	corpus, err := fixture.New().Load(sampleCorpus)
	require.NoError(t, err)
	for _, c := range corpus.Cases {
		assert.NoError(t, c.RawErr, c.Label())
	}
}

func TestYAMLLoader_BadMetadataIsIgnored(t *testing.T) {
	corpus, err := fixture.New().Load(writeCorpus(t, `
metadata:
  total_test_cases: many
test_cases: []
`))
	require.NoError(t, err)
	assert.Nil(t, corpus.Metadata)
}
