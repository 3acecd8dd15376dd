package history_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brandguard/brandguard/internal/adapters/outbound/history"
	"github.com/brandguard/brandguard/internal/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.TestReport {
	yes := true
	return &domain.TestReport{
		RunID:      "0192a3b4-c5d6-7e8f-9a0b-1c2d3e4f5a6b",
		Timestamp:  time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		Mode:       domain.ModeSemantic,
		Strictness: domain.StrictnessCount,
		CorpusPath: "testdata/golden/golden-tests.yaml",
		Summary:    domain.Summary{Total: 2, Passed: 1, Failed: 1},
		Results: []domain.CaseOutcome{
			{
				ID: "color_001", Name: "Palette colors pass", Category: "colors", Passed: true,
				Actual:   domain.NewValidationResult(),
				Expected: &domain.Expectation{Valid: &yes},
			},
			{
				ID: "twitter_002", Name: "Tweet over the limit", Category: "platform.twitter",
				Mismatches: []domain.Mismatch{{Field: "violations.length", Expected: 0, Actual: 1}},
			},
		},
	}
}

func TestHistory_WriteMatchesGolden(t *testing.T) {
	dir := t.TempDir()
	h := history.New(dir)

	path, err := h.Write(sampleReport())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "golden-tests-1790856000000-3e4f5a6b.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report", data)
}

func TestHistory_LatestMirrorsNewestRun(t *testing.T) {
	dir := t.TempDir()
	h := history.New(dir)

	first := sampleReport()
	_, err := h.Write(first)
	require.NoError(t, err)

	second := sampleReport()
	second.RunID = "0192a3b4-c5d6-7e8f-9a0b-ffffffffffff"
	second.Timestamp = first.Timestamp.Add(time.Second)
	second.Summary = domain.Summary{Total: 2, Passed: 2}
	newest, err := h.Write(second)
	require.NoError(t, err)

	latestBytes, err := os.ReadFile(filepath.Join(dir, "latest.json"))
	require.NoError(t, err)
	newestBytes, err := os.ReadFile(newest)
	require.NoError(t, err)
	assert.Equal(t, newestBytes, latestBytes)

	latest, err := h.Latest()
	require.NoError(t, err)
	assert.Equal(t, second.RunID, latest.RunID)
	assert.Equal(t, 2, latest.Summary.Passed)

	files, err := h.List()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, newest, files[1])
}

func TestHistory_LatestEmpty(t *testing.T) {
	h := history.New(filepath.Join(t.TempDir(), "missing"))

	latest, err := h.Latest()
	require.NoError(t, err)
	assert.Nil(t, latest)

	files, err := h.List()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestHistory_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "golden-tests")
	_, err := history.New(dir).Write(sampleReport())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "latest.json"))
}

func TestHistory_RecentKeepsNewest(t *testing.T) {
	h := history.New(t.TempDir())
	base := sampleReport()
	for i := 0; i < 3; i++ {
		r := *base
		r.Timestamp = base.Timestamp.Add(time.Duration(i) * time.Hour)
		r.Summary.Failed = i
		_, err := h.Write(&r)
		require.NoError(t, err)
	}

	recent, err := h.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 1, recent[0].Summary.Failed)
	assert.Equal(t, 2, recent[1].Summary.Failed)

	all, err := h.Recent(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
