package tui

import (
	"fmt"
	"strings"

	"github.com/brandguard/brandguard/internal/domain"
	"github.com/brandguard/brandguard/internal/domain/rules"
	"github.com/charmbracelet/lipgloss"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	criticalTagStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true).Underline(true)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderValidationResult renders a single-asset verdict.
func RenderValidationResult(category string, result *domain.ValidationResult) string {
	var b strings.Builder

	verdict := passStyle.Bold(true).Render("PUBLISHABLE")
	if !result.Valid {
		verdict = failStyle.Bold(true).Render("BLOCKED")
	}
	if n := result.CriticalCount(); n > 0 {
		verdict += "  " + criticalTagStyle.Render(fmt.Sprintf("%d critical", n))
	}
	b.WriteString(boxStyle.Render(titleStyle.Render(category) + "  " + verdict))
	b.WriteString("\n")

	if len(result.Violations) > 0 {
		writeSectionHeader(&b, "Violations", len(result.Violations))
		for _, v := range result.Violations {
			tag := errorTagStyle.Render("error   ")
			if v.Severity == domain.SeverityCritical {
				tag = criticalTagStyle.Render("critical")
			}
			fmt.Fprintf(&b, "    %s %s  %s\n", tag, fileStyle.Render(v.RuleID), v.Message)
			if v.SuggestedFix != nil {
				fix := v.SuggestedFix.Value
				if fix == "" {
					fix = v.SuggestedFix.Guidance
				}
				fmt.Fprintf(&b, "             %s\n", hintStyle.Render(v.SuggestedFix.Type+": "+fix))
			}
		}
	}

	if len(result.Warnings) > 0 {
		writeSectionHeader(&b, "Warnings", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Fprintf(&b, "    %s %s  %s\n", warnTagStyle.Render("warn    "), fileStyle.Render(w.RuleID), w.Message)
		}
	}

	if len(result.Suggestions) > 0 {
		writeSectionHeader(&b, "Suggestions", len(result.Suggestions))
		for _, s := range result.Suggestions {
			line := fmt.Sprintf("    %s %s", warnStyle.Render("●"), s.Message)
			if s.SuggestedValue != "" {
				line += "  " + faintStyle.Render("→ "+s.SuggestedValue)
			}
			b.WriteString(line + "\n")
		}
	}

	if result.Valid && len(result.Warnings) == 0 {
		b.WriteString("\n  " + passStyle.Render("No findings.") + "\n")
	}
	return b.String()
}

// RenderRules lists the catalog in evaluation order.
func RenderRules(list []rules.Rule) string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Rules") + "  " + dimStyle.Render(fmt.Sprintf("(%d)", len(list))) + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, r := range list {
		line := fmt.Sprintf("    %s %s",
			catNameStyle.Render(padRight(r.ID, 28)),
			fileStyle.Render(padRight(r.Trigger, 18)))
		if r.OptIn {
			line += infoTagStyle.Render("opt-in ")
		}
		line += dimStyle.Render(r.Description)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func writeSectionHeader(b *strings.Builder, title string, n int) {
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", n)),
	)
}
