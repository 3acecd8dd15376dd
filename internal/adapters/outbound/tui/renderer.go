package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/brandguard/brandguard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderGoldenReport formats a harness run: summary box, per-category case
// lines, then the failure details.
func RenderGoldenReport(report *domain.TestReport, reportPath string) string {
	var b strings.Builder

	// ── Header ──
	s := report.Summary
	title := headerStyle.Render("brandguard")
	subtitle := dimStyle.Render(fmt.Sprintf("Golden Tests · %s mode", report.Mode))
	rate := lipgloss.NewStyle().
		Bold(true).
		Foreground(rateColor(executedRate(s))).
		Render(fmt.Sprintf("%d / %d passed", s.Passed, s.Total-s.Skipped))
	counts := dimStyle.Render(fmt.Sprintf("%d failed · %d skipped · %.0f%% of corpus", s.Failed, s.Skipped, s.PassRate()))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + rate + "\n" + counts))
	b.WriteString("\n\n")

	// ── Cases, grouped in report order ──
	var lastCategory string
	for i, r := range report.Results {
		category := r.Category
		if category == "" {
			category = "uncategorized"
		}
		if i == 0 || category != lastCategory {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  " + catNameStyle.Render(category) + "\n")
			lastCategory = category
		}
		renderOutcome(&b, r)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Failures ──
	failed := failedOutcomes(report.Results)
	if len(failed) > 0 {
		b.WriteString("  " + titleStyle.Render("Failures") + "  ")
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d failed", len(failed))))
		b.WriteString("\n\n")
		for _, r := range failed {
			renderFailure(&b, r)
		}
	} else {
		b.WriteString("  " + passStyle.Render("All golden tests passed.") + "\n")
	}

	if report.CommitHash != "" {
		b.WriteString("\n  " + faintStyle.Render("commit "+shortHash(report.CommitHash)))
	}
	if reportPath != "" {
		b.WriteString("\n  " + fileStyle.Render("report "+shortenPath(reportPath)))
	}
	b.WriteString("\n")
	return b.String()
}

func renderOutcome(b *strings.Builder, r domain.CaseOutcome) {
	name := padRight(labelFor(r), 22)
	switch {
	case r.Skipped:
		fmt.Fprintf(b, "    %s %s %s\n", skipStyle.Render("○"), skipStyle.Render(name), skipStyle.Render("skipped"))
	case r.Passed:
		fmt.Fprintf(b, "    %s %s %s\n", passStyle.Render("●"), name, faintStyle.Render(r.Name))
	default:
		fmt.Fprintf(b, "    %s %s %s\n", failStyle.Render("●"), name, faintStyle.Render(r.Name))
	}
}

func renderFailure(b *strings.Builder, r domain.CaseOutcome) {
	fmt.Fprintf(b, "    %s %s\n", errorTagStyle.Render("fail "), titleStyle.Render(labelFor(r)))
	if r.Error != "" {
		fmt.Fprintf(b, "         %s\n", dimStyle.Render(r.Error))
	}
	for _, m := range r.Mismatches {
		fmt.Fprintf(b, "         %s %s\n",
			fileStyle.Render(m.Field),
			dimStyle.Render(fmt.Sprintf("expected %v, got %v", m.Expected, m.Actual)))
	}
	for _, e := range r.StructuralErrors {
		fmt.Fprintf(b, "         %s\n", dimStyle.Render(e))
	}
	for _, h := range r.Hints {
		fmt.Fprintf(b, "         %s %s\n", infoTagStyle.Render("hint"), dimStyle.Render(h))
	}
}

func failedOutcomes(results []domain.CaseOutcome) []domain.CaseOutcome {
	var out []domain.CaseOutcome
	for _, r := range results {
		if !r.Passed && !r.Skipped {
			out = append(out, r)
		}
	}
	return out
}

func labelFor(r domain.CaseOutcome) string {
	if r.ID != "" {
		return r.ID
	}
	return r.Name
}

// executedRate ignores skipped cases, so a filtered run that passes
// everything it ran renders green.
func executedRate(s domain.Summary) float64 {
	ran := s.Total - s.Skipped
	if ran == 0 {
		return 100
	}
	return float64(s.Passed) / float64(ran) * 100
}

func rateColor(rate float64) lipgloss.Color {
	switch {
	case rate >= 100:
		return success
	case rate >= 80:
		return lipgloss.Color("#A3E635") // lime
	case rate >= 50:
		return warning
	default:
		return danger
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory lists previous runs, oldest first, with the pass-rate delta
// between consecutive runs.
func RenderHistory(reports []*domain.TestReport) string {
	if len(reports) == 0 {
		return "  " + dimStyle.Render("No golden test reports found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Golden Test History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, r := range reports {
		hash := shortHash(r.CommitHash)
		if hash == "" {
			hash = "·······"
		}
		rate := executedRate(r.Summary)
		rateStyled := lipgloss.NewStyle().
			Foreground(rateColor(rate)).
			Render(fmt.Sprintf("%d/%d", r.Summary.Passed, r.Summary.Total-r.Summary.Skipped))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(r.Timestamp.UTC().Format("2006-01-02")),
			faintStyle.Render(hash),
			rateStyled,
			string(r.Mode),
		)

		if i > 0 {
			diff := r.Summary.Failed - reports[i-1].Summary.Failed
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d failing", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d failing", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
