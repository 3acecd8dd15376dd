package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/brandguard/brandguard/internal/domain"
)

const (
	latestFile   = "latest.json"
	reportPrefix = "golden-tests-"
)

// FileHistory implements domain.ReportWriter. Every run gets its own
// golden-tests-<unix ms>-<run suffix>.json and overwrites latest.json with
// the same bytes. Earlier reports are never merged.
type FileHistory struct {
	dir string
}

func New(dir string) *FileHistory {
	return &FileHistory{dir: dir}
}

func (h *FileHistory) Dir() string { return h.dir }

// Write persists report and returns the path of the timestamped file.
func (h *FileHistory) Write(report *domain.TestReport) (string, error) {
	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return "", fmt.Errorf("creating reports dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}

	fp := filepath.Join(h.dir, reportName(report))
	if err := os.WriteFile(fp, data, 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(h.dir, latestFile), data, 0644); err != nil {
		return "", fmt.Errorf("writing latest report: %w", err)
	}
	return fp, nil
}

// Latest loads latest.json. It returns nil, nil when no run has been recorded.
func (h *FileHistory) Latest() (*domain.TestReport, error) {
	return h.load(filepath.Join(h.dir, latestFile))
}

// List returns the timestamped report files, oldest first.
func (h *FileHistory) List() ([]string, error) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, reportPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		out = append(out, filepath.Join(h.dir, name))
	}
	// Names embed a fixed-width millisecond timestamp, so lexical is chronological.
	sort.Strings(out)
	return out, nil
}

// Recent decodes the last n timestamped reports, oldest first. n <= 0 loads
// all of them.
func (h *FileHistory) Recent(n int) ([]*domain.TestReport, error) {
	paths, err := h.List()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(paths) > n {
		paths = paths[len(paths)-n:]
	}
	reports := make([]*domain.TestReport, 0, len(paths))
	for _, fp := range paths {
		r, err := h.load(fp)
		if err != nil {
			return nil, err
		}
		if r != nil {
			reports = append(reports, r)
		}
	}
	return reports, nil
}

func (h *FileHistory) load(fp string) (*domain.TestReport, error) {
	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var report domain.TestReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fp, err)
	}
	return &report, nil
}

func reportName(report *domain.TestReport) string {
	name := fmt.Sprintf("%s%d", reportPrefix, report.Timestamp.UnixMilli())
	if id := strings.ReplaceAll(report.RunID, "-", ""); len(id) >= 8 {
		name += "-" + id[len(id)-8:]
	}
	return name + ".json"
}
