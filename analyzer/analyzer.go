package analyzer

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"github.com/hirerank/backend/classifier"
	"github.com/hirerank/backend/extract"
	"github.com/hirerank/backend/models"
)

// Analyzer runs the full resume analysis pipeline. All providers are
// optional; a nil provider activates that step's deterministic fallback, so
// Analyze always produces a result.
type Analyzer struct {
	embedder       EmbeddingProvider
	summarizer     SummaryProvider
	roleClassifier classifier.Provider
}

func New(embedder EmbeddingProvider, summarizer SummaryProvider, roleClassifier classifier.Provider) *Analyzer {
	return &Analyzer{
		embedder:       embedder,
		summarizer:     summarizer,
		roleClassifier: roleClassifier,
	}
}

// Input is one resume to analyze.
type Input struct {
	ResumeText     string
	JobTitle       string
	JobDescription string
	Filename       string
}

// Analyze extracts the candidate profile, scores the resume against the job
// context and classifies the candidate's role. Scoring plus summarization
// and classification run concurrently; each degrades independently via its
// own fallback.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobTitle, jobDescription string) models.AnalysisResult {
	profile := extract.BuildProfile(resumeText)
	expected := RoleSkills(jobTitle)

	jobContext := jobDescription
	if jobContext == "" {
		jobContext = fmt.Sprintf("%s. Required skills: %s", jobTitle, strings.Join(expected, ", "))
	}

	var (
		wg             sync.WaitGroup
		score          float64
		summary        string
		classification *models.DynamicClassification
	)

	// Summarization depends on the score, so it chains behind similarity;
	// classification is independent.
	wg.Add(2)
	go func() {
		defer wg.Done()
		score = Similarity(ctx, a.embedder, resumeText, jobContext)
		summary = GenerateSummary(ctx, a.summarizer, resumeText, jobContext, score)
	}()
	go func() {
		defer wg.Done()
		classification = classifier.Classify(ctx, a.roleClassifier, profile, jobTitle, jobDescription)
	}()
	wg.Wait()

	found, missing := partitionExpectedSkills(expected, profile.Skills)

	return models.AnalysisResult{
		Profile:        profile,
		JobTitle:       jobTitle,
		ExpectedSkills: expected,
		SkillsFound:    found,
		SkillsMissing:  missing,
		SkillStack:     MatchRoleSkills(profile.Skills, jobTitle),
		SkillSummary:   SummarizeSkillMatch(profile.Skills, jobTitle),
		SkillCoverage:  CoveragePercentage(profile.Skills, jobTitle),
		IsRoleMatch:    IsRoleMatch(profile.Skills, jobTitle),
		MatchScore:     math.Round(score*100) / 100,
		Summary:        summary,
		Classification: classification,
	}
}

// Rank is the legacy scoring flow: similarity against a raw job description
// with extracted skills and a summary, no role-stack analysis.
func (a *Analyzer) Rank(ctx context.Context, resumeText, jobDescription string) (float64, []string, string, models.CandidateProfile) {
	profile := extract.BuildProfile(resumeText)
	score := Similarity(ctx, a.embedder, resumeText, jobDescription)
	summary := GenerateSummary(ctx, a.summarizer, resumeText, jobDescription, score)
	return math.Round(score*100) / 100, profile.Skills, summary, profile
}

// AnalyzeBatch fans the inputs out over a bounded worker pool and returns
// results in input order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, inputs []Input, maxConcurrent int) []models.AnalysisResult {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	results := make([]models.AnalysisResult, len(inputs))
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input Input) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			log.Printf("[Analyzer] Analyzing resume %d/%d: %s", i+1, len(inputs), input.Filename)
			results[i] = a.Analyze(ctx, input.ResumeText, input.JobTitle, input.JobDescription)
		}(i, input)
	}
	wg.Wait()

	return results
}

// partitionExpectedSkills splits the expected skill list into skills the
// candidate has and skills they lack, compared case-insensitively.
func partitionExpectedSkills(expected, candidateSkills []string) (found, missing []string) {
	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(s)] = true
	}
	for _, s := range expected {
		if have[strings.ToLower(s)] {
			found = append(found, s)
		} else {
			missing = append(missing, s)
		}
	}
	return found, missing
}
