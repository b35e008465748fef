package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type fakeSummarizer struct {
	response string
	err      error
	calls    int
	lastText string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string, minTokens, maxTokens int) (string, error) {
	f.calls++
	f.lastText = text
	return f.response, f.err
}

const sampleResume = "Experienced software engineer skilled in Python, Docker and Kubernetes. " +
	"Previously built large scale data platforms and deployment tooling for several years."

const sampleJob = "Looking for a backend engineer comfortable with Python, containers and " +
	"cloud infrastructure to join our platform team."

func TestGenerateSummary_UsesProviderAboveThreshold(t *testing.T) {
	provider := &fakeSummarizer{response: "strong backend profile with container experience."}

	got := GenerateSummary(context.Background(), provider, sampleResume, sampleJob, 85)
	assert.Equal(t, "Excellent match: strong backend profile with container experience.", got)
	assert.Equal(t, 1, provider.calls)
	assert.Contains(t, provider.lastText, "Job Requirements:")
	assert.Contains(t, provider.lastText, "Candidate Profile:")
}

func TestGenerateSummary_PrefixFollowsScoreBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{85, "Excellent match: "},
		{65, "Good match: "},
		{45, "Moderate match: "},
	}
	for _, tt := range tests {
		provider := &fakeSummarizer{response: "summary body."}
		got := GenerateSummary(context.Background(), provider, sampleResume, sampleJob, tt.score)
		if tt.score > 50 {
			assert.True(t, strings.HasPrefix(got, tt.want), "score %.0f: got %q", tt.score, got)
		} else {
			// below the provider threshold the template path is used instead
			assert.Zero(t, provider.calls)
		}
	}
}

func TestGenerateSummary_LowScoreSkipsProvider(t *testing.T) {
	provider := &fakeSummarizer{response: "should not be used"}

	got := GenerateSummary(context.Background(), provider, sampleResume, sampleJob, 42)
	assert.Zero(t, provider.calls)
	assert.Contains(t, got, "relevant competencies")
}

func TestGenerateSummary_ProviderErrorFallsBackToTemplate(t *testing.T) {
	provider := &fakeSummarizer{err: errors.New("model unavailable")}

	got := GenerateSummary(context.Background(), provider, sampleResume, sampleJob, 85)
	assert.Contains(t, got, "Highly qualified candidate")
}

func TestTemplateSummary_Bands(t *testing.T) {
	resume := "Python, Docker and Kubernetes engineer"

	assert.Contains(t, templateSummary(resume, 85), "Highly qualified candidate with 3 relevant skills")
	assert.Contains(t, templateSummary(resume, 65), "Well-suited candidate with 3 matching skills")
	assert.Contains(t, templateSummary(resume, 45), "relevant competencies")
	assert.Contains(t, templateSummary(resume, 20), "transferable skills")
}

func TestTemplateSummary_NoSkills(t *testing.T) {
	got := templateSummary("plain text without any tooling mentioned", 10)
	assert.Equal(t, "Limited overlap with job requirements based on keyword analysis. Consider manual review.", got)
}

func TestTruncate_KeepsRuneBoundary(t *testing.T) {
	s := "x" + strings.Repeat("é", 300)

	got := truncate(s, 300)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 299, len(got))

	assert.Equal(t, "short", truncate("short", 300))
}
