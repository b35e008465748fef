package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hirerank/backend/models"
)

const (
	maxExperienceEntries   = 5
	maxDescriptionLen      = 300
	maxDescriptionLines    = 3
	positionWindow         = 8
	unboundedExperienceCap = 60
)

var (
	experienceStartPatterns = compileAll([]string{
		`(?i)^\s*(?:work\s+|professional\s+|relevant\s+)?experience\s*:?\s*$`,
		`(?i)^\s*employment(?:\s+history)?\s*:?\s*$`,
		`(?i)^\s*work\s+history\s*:?\s*$`,
		`(?i)^\s*career\s+(?:history|summary)\s*:?\s*$`,
	})
	experienceEndPatterns = compileAll([]string{
		`(?i)^\s*education(?:al)?(?:\s+\w+)?\s*:?\s*$`,
		`(?i)^\s*(?:technical\s+)?skills\s*:?\s*$`,
		`(?i)^\s*projects?\s*:?\s*$`,
		`(?i)^\s*certifications?\s*:?\s*$`,
		`(?i)^\s*(?:achievements?|awards?|references?)\s*:?\s*$`,
	})

	// Any section heading; used to keep headings out of descriptions.
	anyHeaderPattern = regexp.MustCompile(`(?i)^\s*(?:(?:work\s+|professional\s+|technical\s+)?(?:experience|employment|skills|education|projects?|certifications?|achievements?|awards?|references?|summary|objective))\s*:?\s*$`)

	jobTitleKeywords = []string{
		"engineer", "developer", "manager", "analyst", "consultant",
		"architect", "designer", "administrator", "specialist",
		"scientist", "director", "lead", "intern",
	}

	monthToken = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

	dateRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b` + monthToken + `\s+\d{4}\s*(?:-|–|to)\s*(?:` + monthToken + `\s+\d{4}|present|current)`),
		regexp.MustCompile(`(?i)\b\d{1,2}/\d{4}\s*(?:-|–|to)\s*(?:\d{1,2}/\d{4}|present|current)`),
		regexp.MustCompile(`(?i)\b(?:19[5-9]\d|20[0-2]\d)\s*(?:-|–|to)\s*(?:19[5-9]\d|20[0-2]\d|present|current)\b`),
	}

	companySuffixPattern = regexp.MustCompile(`(?i)\b(inc|llc|ltd|corp|technologies|solutions|systems|services)\b`)

	totalYearsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*years?(?:\s+of)?\s+(?:\w+\s+)?experience\b`)
)

// positionAccumulator holds one position while its surrounding lines are
// still being consumed.
type positionAccumulator struct {
	title     string
	company   string
	duration  string
	descLines []string
	linesSeen int
}

func (a *positionAccumulator) entry() (models.ExperienceEntry, bool) {
	title := strings.Trim(a.title, " .,;:-|•\t")
	if len(title) <= 3 {
		return models.ExperienceEntry{}, false
	}
	company := a.company
	if company == "" {
		company = models.NotSpecified
	}
	duration := a.duration
	if duration == "" {
		duration = models.NotSpecified
	}
	desc := strings.Join(a.descLines, " ")
	if len(desc) > maxDescriptionLen {
		cut := maxDescriptionLen
		// never split a multi-byte rune at the cap
		for cut > 0 && !utf8.RuneStart(desc[cut]) {
			cut--
		}
		desc = desc[:cut]
	}
	return models.ExperienceEntry{
		Title:       title,
		Company:     company,
		Duration:    duration,
		Description: desc,
	}, true
}

// ExtractExperience walks the experience section accumulating positions. A
// line opens a new position when it carries a job-title keyword or a date
// range; subsequent lines fill in company, duration and description until
// the next position line.
func ExtractExperience(text string) []models.ExperienceEntry {
	lines := Lines(text)
	window := experienceWindow(lines)

	entries := make([]models.ExperienceEntry, 0, maxExperienceEntries)
	seen := make(map[string]bool)
	var current *positionAccumulator

	flush := func() {
		if current == nil {
			return
		}
		entry, ok := current.entry()
		current = nil
		if !ok {
			return
		}
		key := strings.ToLower(entry.Title) + "|" + strings.ToLower(entry.Company)
		if seen[key] {
			return
		}
		seen[key] = true
		entries = append(entries, entry)
	}

	for _, line := range window {
		if len(entries) >= maxExperienceEntries {
			break
		}

		dateMatch := findDateRange(line)

		// A bare date range below a title belongs to the open position.
		if dateMatch != "" && current != nil && current.duration == "" {
			current.duration = dateMatch
			rest := strings.TrimSpace(strings.Replace(line, dateMatch, "", 1))
			if current.company == "" && looksLikeCompany(rest) {
				current.company = strings.Trim(rest, " .,;:-|•\t")
			}
			continue
		}

		isPosition := dateMatch != "" || isJobTitleLine(line)
		if isPosition {
			flush()
			current = &positionAccumulator{
				title:    strings.TrimSpace(strings.Replace(line, dateMatch, "", 1)),
				duration: dateMatch,
			}
			continue
		}

		if current == nil || current.linesSeen >= positionWindow {
			continue
		}
		current.linesSeen++

		if anyHeaderPattern.MatchString(line) {
			continue
		}
		if current.company == "" && looksLikeCompany(line) {
			current.company = strings.Trim(line, " .,;:-|•\t")
			continue
		}
		if (current.company != "" || current.duration != "") &&
			len(current.descLines) < maxDescriptionLines {
			current.descLines = append(current.descLines, strings.Trim(line, " -•\t"))
		}
	}
	if len(entries) < maxExperienceEntries {
		flush()
	}

	if len(entries) == 0 {
		if synthetic, ok := syntheticExperience(text); ok {
			entries = append(entries, synthetic)
		}
	}
	return entries
}

// experienceWindow returns the experience section, or the first half of the
// document up to a line cap when no section heading was found.
func experienceWindow(lines []string) []string {
	start, end := FindSection(lines, experienceStartPatterns, experienceEndPatterns)
	if start != WholeDocument {
		return lines[start:end]
	}
	half := len(lines) / 2
	if half < 1 {
		half = len(lines)
	}
	if half > unboundedExperienceCap {
		half = unboundedExperienceCap
	}
	return lines[:half]
}

func findDateRange(line string) string {
	for _, p := range dateRangePatterns {
		if m := p.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

func isJobTitleLine(line string) bool {
	if len(line) > 80 {
		return false
	}
	return containsAnyFold(line, jobTitleKeywords)
}

// looksLikeCompany accepts a capitalized line or one carrying a corporate
// suffix keyword, as long as it does not itself read like a job title.
func looksLikeCompany(line string) bool {
	if isJobTitleLine(line) || len(line) > 60 {
		return false
	}
	if companySuffixPattern.MatchString(line) {
		return true
	}
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > 6 {
		return false
	}
	return allTitleCased(words)
}

// syntheticExperience derives a single coarse entry when no positions were
// found: first from an explicit "N+ years experience" claim, then from the
// span of years mentioned anywhere in the text.
func syntheticExperience(text string) (models.ExperienceEntry, bool) {
	if m := totalYearsPattern.FindStringSubmatch(text); m != nil {
		return models.ExperienceEntry{
			Title:    "Professional Experience",
			Company:  models.NotSpecified,
			Duration: m[1] + " years",
		}, true
	}

	var years []int
	for _, m := range educationYearPattern.FindAllString(text, -1) {
		if y, err := strconv.Atoi(m); err == nil {
			years = append(years, y)
		}
	}
	if len(years) >= 2 {
		lo, hi := years[0], years[0]
		for _, y := range years[1:] {
			if y < lo {
				lo = y
			}
			if y > hi {
				hi = y
			}
		}
		if hi > lo {
			return models.ExperienceEntry{
				Title:    "Professional Experience",
				Company:  models.NotSpecified,
				Duration: "~" + strconv.Itoa(hi-lo) + " years",
			}, true
		}
	}
	return models.ExperienceEntry{}, false
}
