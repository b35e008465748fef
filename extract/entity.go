package extract

import (
	"regexp"
	"strings"

	"github.com/hirerank/backend/models"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Tried in order; first match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-.]?\d{3,4}[-.]?\d{3,4}[-.]?\d{4}\b`),
	}

	namePrefixPattern = regexp.MustCompile(`(?i)^(resume|curriculum vitae|cv)\s*[-:]*\s*`)

	labeledNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)name\s*:\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
		regexp.MustCompile(`(?i)candidate\s*:\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
		regexp.MustCompile(`(?i)applicant\s*:\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
	}

	// Lines containing these never hold a candidate name.
	nameDenylist = []string{
		"phone", "email", "address", "linkedin", "github", "portfolio",
		"objective", "summary", "education", "experience", "skills",
		"contact", "mobile",
	}
)

// ExtractEmail returns the first email address in text, or the NotFound
// sentinel.
func ExtractEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	return models.NotFound
}

// ExtractPhone returns the first phone number in text, trying common US and
// international shapes in order, or the NotFound sentinel.
func ExtractPhone(text string) string {
	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}
	return models.NotFound
}

// ExtractName scans the top of the resume for a 2-4 word title-cased phrase,
// then falls back to labeled "name:"/"candidate:" fields.
func ExtractName(text string) string {
	lines := Lines(text)

	limit := 15
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = namePrefixPattern.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if len(line) <= 2 || len(line) >= 50 {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if !allTitleCased(words) {
			continue
		}
		if containsAnyFold(line, nameDenylist) {
			continue
		}
		return line
	}

	for _, p := range labeledNamePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}

	return models.NotFound
}

// allTitleCased reports whether every word that starts with a letter starts
// with an uppercase one.
func allTitleCased(words []string) bool {
	for _, w := range words {
		r := rune(w[0])
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}

func containsAnyFold(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
