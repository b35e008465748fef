package analyzer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClassifier struct {
	response string
	err      error
}

func (f *fakeClassifier) Classify(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

const fullStackResume = `John Smith
john.smith@example.com
555-123-4567

Skills
React, Django, PostgreSQL, Docker

Experience
Software Engineer
Acme Technologies Inc
2019 - 2023
Shipped the customer portal`

func TestAnalyze_FullPipeline(t *testing.T) {
	a := New(nil, nil, nil)

	result := a.Analyze(context.Background(), fullStackResume, "Full Stack Developer", "")

	assert.Equal(t, "John Smith", result.Profile.Name)
	assert.Equal(t, "john.smith@example.com", result.Profile.Email)
	assert.Equal(t, "Full Stack Developer", result.JobTitle)

	assert.Contains(t, result.Profile.Skills, "React")
	assert.Contains(t, result.Profile.Skills, "Django")

	assert.True(t, result.IsRoleMatch)
	assert.Equal(t, 10.0, result.SkillCoverage["frontend"])
	assert.Contains(t, result.SkillsFound, "react")
	assert.Contains(t, result.SkillsMissing, "angular")

	assert.Greater(t, result.MatchScore, 0.0)
	assert.NotEmpty(t, result.Summary)

	// nil classifier provider still yields a static classification
	require.NotNil(t, result.Classification)
	assert.Equal(t, "low", result.Classification.RoleConfidence)
	assert.Contains(t, result.Classification.Frontend, "React")
}

func TestAnalyze_ClassifierResponseUsed(t *testing.T) {
	provider := &fakeClassifier{response: `{"matched_role":"Full Stack Developer","role_confidence":"high"}`}
	a := New(nil, nil, provider)

	result := a.Analyze(context.Background(), fullStackResume, "Full Stack Developer", "")

	require.NotNil(t, result.Classification)
	assert.Equal(t, "Full Stack Developer", result.Classification.MatchedRole)
	assert.Equal(t, "high", result.Classification.RoleConfidence)
}

func TestAnalyze_JobDescriptionOverridesDerivedContext(t *testing.T) {
	a := New(nil, nil, nil)

	withDesc := a.Analyze(context.Background(), fullStackResume, "Full Stack Developer",
		"We need React and Django experience with PostgreSQL and Docker deployments.")
	withoutDesc := a.Analyze(context.Background(), fullStackResume, "Full Stack Developer", "")

	assert.NotEqual(t, withDesc.MatchScore, withoutDesc.MatchScore)
}

func TestRank_LegacyFlow(t *testing.T) {
	a := New(nil, nil, nil)

	score, skills, summary, profile := a.Rank(context.Background(), fullStackResume,
		"Looking for a React and Django developer with Docker experience")

	assert.Greater(t, score, 0.0)
	assert.Contains(t, skills, "React")
	assert.NotEmpty(t, summary)
	assert.Equal(t, "John Smith", profile.Name)
}

func TestAnalyzeBatch_PreservesInputOrder(t *testing.T) {
	a := New(nil, nil, nil)

	inputs := make([]Input, 6)
	for i := range inputs {
		inputs[i] = Input{
			ResumeText: fullStackResume,
			JobTitle:   fmt.Sprintf("Role %d", i),
			Filename:   fmt.Sprintf("resume-%d.pdf", i),
		}
	}

	results := a.AnalyzeBatch(context.Background(), inputs, 3)
	require.Len(t, results, 6)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("Role %d", i), r.JobTitle)
	}
}

func TestAnalyzeBatch_ClampsConcurrency(t *testing.T) {
	a := New(nil, nil, nil)

	results := a.AnalyzeBatch(context.Background(), []Input{{ResumeText: fullStackResume, JobTitle: "Backend Developer"}}, 0)
	require.Len(t, results, 1)
	assert.Equal(t, "Backend Developer", results[0].JobTitle)
}

func TestPartitionExpectedSkills(t *testing.T) {
	found, missing := partitionExpectedSkills(
		[]string{"react", "django", "terraform"},
		[]string{"React", "Django"},
	)
	assert.Equal(t, []string{"react", "django"}, found)
	assert.Equal(t, []string{"terraform"}, missing)
}
