package analyzer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/hirerank/backend/extract"
)

// SummaryProvider generates an abstractive summary bounded to a token range.
type SummaryProvider interface {
	Summarize(ctx context.Context, text string, minTokens, maxTokens int) (string, error)
}

const summaryContextLen = 500

// GenerateSummary explains the candidate's fit. Above a score of 50 and with
// a provider available it requests an abstractive summary over the combined
// job and resume context; otherwise, or on any provider failure, it builds a
// deterministic template summary from the extracted skills.
func GenerateSummary(ctx context.Context, provider SummaryProvider, resumeText, jobContext string, matchScore float64) string {
	if provider != nil && matchScore > 50 {
		combined := fmt.Sprintf("Job Requirements: %s... Candidate Profile: %s...",
			truncate(jobContext, summaryContextLen), truncate(resumeText, summaryContextLen))

		if len(combined) > 100 {
			summary, err := provider.Summarize(ctx, combined, 30, 80)
			if err != nil {
				log.Printf("[Analyzer] Summary generation failed, using template: %v", err)
			} else if summary != "" {
				return scorePrefix(matchScore) + summary
			}
		}
	}
	return templateSummary(resumeText, matchScore)
}

func scorePrefix(score float64) string {
	switch {
	case score >= 80:
		return "Excellent match: "
	case score >= 60:
		return "Good match: "
	case score >= 40:
		return "Moderate match: "
	default:
		return "Partial match: "
	}
}

// templateSummary interpolates extracted skills into a score-banded sentence.
func templateSummary(resumeText string, matchScore float64) string {
	skills := extract.ExtractSkills(resumeText)

	switch {
	case matchScore >= 80:
		return fmt.Sprintf("Highly qualified candidate with %d relevant skills including %s. Strong alignment with job requirements.",
			len(skills), joinFirst(skills, 3))
	case matchScore >= 60:
		return fmt.Sprintf("Well-suited candidate with %d matching skills such as %s. Good potential for the role.",
			len(skills), joinFirst(skills, 3))
	case matchScore >= 40:
		return fmt.Sprintf("Candidate shows %d relevant competencies including %s. May require additional evaluation.",
			len(skills), joinFirst(skills, 2))
	default:
		if len(skills) > 0 {
			return fmt.Sprintf("Candidate has some transferable skills (%s), but limited direct match with requirements.",
				joinFirst(skills, 2))
		}
		return "Limited overlap with job requirements based on keyword analysis. Consider manual review."
	}
}

func joinFirst(items []string, n int) string {
	if len(items) < n {
		n = len(items)
	}
	return strings.Join(items[:n], ", ")
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
