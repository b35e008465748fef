package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hirerank/backend/models"
)

const maxEducationEntries = 5

var (
	educationStartPatterns = compileAll([]string{
		`(?i)^\s*education(?:al)?(?:\s+(?:background|details|qualifications?))?\s*:?\s*$`,
		`(?i)^\s*academic(?:s)?(?:\s+(?:background|record|qualifications?))?\s*:?\s*$`,
		`(?i)^\s*qualifications?\s*:?\s*$`,
	})
	educationEndPatterns = compileAll([]string{
		`(?i)^\s*(?:work\s+|professional\s+)?experience\s*:?\s*$`,
		`(?i)^\s*employment(?:\s+history)?\s*:?\s*$`,
		`(?i)^\s*(?:technical\s+)?skills\s*:?\s*$`,
		`(?i)^\s*projects?\s*:?\s*$`,
		`(?i)^\s*certifications?\s*:?\s*$`,
		`(?i)^\s*(?:achievements?|awards?)\s*:?\s*$`,
	})

	// Degree families in priority order. Group 1 is the degree token,
	// group 2 the optional field of study.
	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(bachelor(?:'s)?(?:\s+of\s+(?:science|arts|engineering|technology|commerce|computer applications|business administration))?|b\.?\s?tech|b\.?sc|b\.?e|b\.?a|bca)\b\.?(?:\s+(?:in|of)\s+([A-Za-z][A-Za-z&.,/+ -]{2,}))?`),
		regexp.MustCompile(`(?i)\b(master(?:'s)?(?:\s+of\s+(?:science|arts|engineering|technology|commerce|computer applications|business administration))?|m\.?\s?tech|m\.?sc|m\.?a|mba|mca)\b\.?(?:\s+(?:in|of)\s+([A-Za-z][A-Za-z&.,/+ -]{2,}))?`),
		regexp.MustCompile(`(?i)\b(ph\.?\s?d|doctorate|doctor of philosophy)\b\.?(?:\s+(?:in|of)\s+([A-Za-z][A-Za-z&.,/+ -]{2,}))?`),
		regexp.MustCompile(`(?i)\b((?:post\s?graduate\s+)?diploma)\b(?:\s+(?:in|of)\s+([A-Za-z][A-Za-z&.,/+ -]{2,}))?`),
	}

	institutionSuffixPattern = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic)\b`)
	institutionAcronym       = regexp.MustCompile(`\b[A-Z]{2,6}\s+(?:University|College|Institute|School)\b`)
	institutionPhrases       = []string{
		"institute of technology",
		"institute of science",
		"institute of management",
		"school of engineering",
		"school of business",
	}

	educationYearPattern = regexp.MustCompile(`\b(19[5-9]\d|20[0-2]\d)\b`)

	looseEducationKeywords = []string{
		"bachelor", "master", "phd", "doctorate", "mba", "b.tech",
		"m.tech", "b.sc", "m.sc", "bca", "mca", "diploma", "degree",
	}
)

// ExtractEducation pulls structured education entries out of the resume.
// It works over the education section when one is found, otherwise over the
// whole document, and degrades to a loose keyword pass when the structured
// patterns find nothing.
func ExtractEducation(text string) []models.EducationEntry {
	lines := Lines(text)
	window := sectionWindow(lines, educationStartPatterns, educationEndPatterns)

	entries := make([]models.EducationEntry, 0, maxEducationEntries)
	seen := make(map[string]bool)

	for i, line := range window {
		degree, ok := matchDegree(line)
		if !ok {
			continue
		}

		institution := findInstitution(window, i)
		year := findYearRange(window, i)

		key := strings.ToLower(degree) + "|" + strings.ToLower(institution)
		if seen[key] {
			continue
		}
		seen[key] = true

		entries = append(entries, models.EducationEntry{
			Degree:      degree,
			Institution: institution,
			Year:        year,
		})
		if len(entries) >= maxEducationEntries {
			return entries
		}
	}

	if len(entries) == 0 {
		entries = looseEducationPass(lines)
	}
	return entries
}

// matchDegree tests the degree families in priority order and composes
// "<degree> in <field>" when a field of study was captured.
func matchDegree(line string) (string, bool) {
	for _, p := range degreePatterns {
		m := p.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		degree := strings.TrimSpace(m[1])
		if len(m) > 2 && m[2] != "" {
			field := cleanFieldOfStudy(m[2])
			if field != "" {
				return degree + " in " + field, true
			}
		}
		return degree, true
	}
	return "", false
}

// cleanFieldOfStudy strips trailing years, "from"/"at" clauses and
// punctuation, then truncates to 60 characters at a word boundary.
func cleanFieldOfStudy(field string) string {
	field = strings.TrimSpace(field)
	for _, sep := range []string{" from ", " at ", ",", "(", "|"} {
		if idx := strings.Index(strings.ToLower(field), sep); idx >= 0 {
			field = field[:idx]
		}
	}
	field = educationYearPattern.ReplaceAllString(field, "")
	field = strings.Trim(field, " .,;:-")

	if len(field) > 60 {
		cut := field[:60]
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
		field = strings.Trim(cut, " .,;:-")
	}
	return field
}

// findInstitution searches the line itself plus a window of one line above
// and four below for an institution name.
func findInstitution(window []string, i int) string {
	lo := i - 1
	if lo < 0 {
		lo = 0
	}
	hi := i + 4
	if hi >= len(window) {
		hi = len(window) - 1
	}
	for j := lo; j <= hi; j++ {
		line := window[j]
		if institutionSuffixPattern.MatchString(line) ||
			institutionAcronym.MatchString(line) ||
			containsAnyFold(line, institutionPhrases) {
			return cleanInstitution(line)
		}
	}
	return models.NotSpecified
}

func cleanInstitution(line string) string {
	line = educationYearPattern.ReplaceAllString(line, "")
	line = regexp.MustCompile(`(?i)^\s*(?:from|at)\s+`).ReplaceAllString(line, "")
	line = strings.Trim(line, " .,;:-|•\t")
	return strings.Join(strings.Fields(line), " ")
}

// findYearRange collects 4-digit years near the degree line. One year yields
// that year; two or more yield "first - last".
func findYearRange(window []string, i int) string {
	lo := i - 1
	if lo < 0 {
		lo = 0
	}
	hi := i + 4
	if hi >= len(window) {
		hi = len(window) - 1
	}

	var years []int
	for j := lo; j <= hi; j++ {
		for _, m := range educationYearPattern.FindAllString(window[j], -1) {
			y, err := strconv.Atoi(m)
			if err == nil {
				years = append(years, y)
			}
		}
	}
	switch {
	case len(years) == 0:
		return models.NotSpecified
	case len(years) == 1:
		return strconv.Itoa(years[0])
	default:
		sort.Ints(years)
		return fmt.Sprintf("%d - %d", years[0], years[len(years)-1])
	}
}

// looseEducationPass catches resumes where no structured degree pattern
// matched: any line carrying an education keyword becomes a raw entry.
func looseEducationPass(lines []string) []models.EducationEntry {
	entries := make([]models.EducationEntry, 0, maxEducationEntries)
	seen := make(map[string]bool)

	for _, line := range lines {
		lower := strings.ToLower(line)
		if len(line) <= 5 || !containsAnyFold(lower, looseEducationKeywords) {
			continue
		}
		if matchesAny(line, educationStartPatterns) {
			continue
		}

		degree, institution := splitLooseEntry(line)
		key := strings.ToLower(degree) + "|" + strings.ToLower(institution)
		if degree == "" || seen[key] {
			continue
		}
		seen[key] = true

		year := models.NotSpecified
		if years := educationYearPattern.FindAllString(line, -1); len(years) == 1 {
			year = years[0]
		} else if len(years) > 1 {
			sort.Strings(years)
			year = years[0] + " - " + years[len(years)-1]
		}

		entries = append(entries, models.EducationEntry{
			Degree:      degree,
			Institution: institution,
			Year:        year,
		})
		if len(entries) >= maxEducationEntries {
			break
		}
	}
	return entries
}

// splitLooseEntry splits a raw education line on "from"/"at"/"-" into a
// degree part and an institution part.
func splitLooseEntry(line string) (string, string) {
	lower := strings.ToLower(line)
	for _, sep := range []string{" from ", " at ", " - "} {
		if idx := strings.Index(lower, sep); idx > 0 {
			degree := strings.Trim(line[:idx], " .,;:-")
			institution := cleanInstitution(line[idx+len(sep):])
			if institution == "" {
				institution = models.NotSpecified
			}
			return degree, institution
		}
	}
	return strings.Trim(educationYearPattern.ReplaceAllString(line, ""), " .,;:-|"), models.NotSpecified
}
