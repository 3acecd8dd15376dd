package rules

import (
	"fmt"
	"strings"

	"github.com/brandguard/brandguard/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fold lower-cases s for case-insensitive matching. A Caser keeps state,
// so each call gets its own.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

func vocabularyAndText(asset domain.Asset, ectx domain.EvaluationContext) (*domain.Vocabulary, string, bool) {
	if asset.Content == nil || asset.Content.Text == "" || ectx.Brand == nil {
		return nil, "", false
	}
	vocab := ectx.Brand.VerbalIdentity.Vocabulary
	if vocab == nil {
		return nil, "", false
	}
	return vocab, fold(asset.Content.Text), true
}

// checkBannedWords is a substring scan: banning "ass" also flags "class".
func checkBannedWords(asset domain.Asset, ectx domain.EvaluationContext) domain.Findings {
	var f domain.Findings
	vocab, text, ok := vocabularyAndText(asset, ectx)
	if !ok {
		return f
	}
	for _, word := range vocab.Banned {
		if word == "" || !strings.Contains(text, fold(word)) {
			continue
		}
		f.Violations = append(f.Violations, domain.Violation{
			RuleID:   BannedWordCheck,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("Content contains banned word: %s", word),
			Field:    "content.text",
			Value:    word,
		})
		if to, found := replacementFor(vocab, word); found {
			f.Suggestions = append(f.Suggestions, replaceWord(word, to))
		}
	}
	return f
}

func checkAvoidWords(asset domain.Asset, ectx domain.EvaluationContext) domain.Findings {
	var f domain.Findings
	vocab, text, ok := vocabularyAndText(asset, ectx)
	if !ok {
		return f
	}
	for _, word := range vocab.Avoid {
		if word == "" || !strings.Contains(text, fold(word)) {
			continue
		}
		f.Warnings = append(f.Warnings, domain.Warning{
			RuleID:  AvoidWordCheck,
			Message: fmt.Sprintf("Content uses discouraged word: %s", word),
			Field:   "content.text",
		})
		if to, found := replacementFor(vocab, word); found {
			f.Suggestions = append(f.Suggestions, replaceWord(word, to))
		}
	}
	return f
}

func replacementFor(vocab *domain.Vocabulary, word string) (string, bool) {
	w := fold(word)
	for _, r := range vocab.Replacements {
		if fold(r.From) == w && r.To != "" {
			return r.To, true
		}
	}
	return "", false
}

func replaceWord(from, to string) domain.Suggestion {
	return domain.Suggestion{
		Type:           "replace_word",
		Message:        fmt.Sprintf("Replace '%s' with '%s'", from, to),
		SuggestedValue: to,
	}
}
