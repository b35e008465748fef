package analyzer

import (
	"context"
	"log"
	"math"
	"regexp"
	"strings"
)

// EmbeddingProvider produces a vector representation for a piece of text.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

var (
	keywordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

	stopwords = map[string]bool{
		"the": true, "and": true, "but": true, "for": true, "with": true,
		"was": true, "were": true, "been": true, "have": true, "has": true,
		"had": true, "does": true, "did": true, "will": true, "would": true,
		"should": true, "could": true, "may": true, "might": true,
		"must": true, "can": true, "this": true, "that": true,
		"these": true, "those": true, "are": true,
	}
)

// Similarity scores how well a resume fits a job context on a 0-100 scale.
// The embedding path blends cosine similarity with keyword overlap at
// 0.7/0.3; when the provider is nil or errors, keyword overlap alone is the
// score.
func Similarity(ctx context.Context, provider EmbeddingProvider, resumeText, jobContext string) float64 {
	keywordScore := KeywordOverlap(resumeText, jobContext)
	if provider == nil {
		return keywordScore
	}

	resumeVec, err := provider.Embed(ctx, resumeText)
	if err != nil {
		log.Printf("[Analyzer] Embedding failed, using keyword overlap: %v", err)
		return keywordScore
	}
	jobVec, err := provider.Embed(ctx, jobContext)
	if err != nil {
		log.Printf("[Analyzer] Embedding failed, using keyword overlap: %v", err)
		return keywordScore
	}

	cosine := cosineSimilarity(resumeVec, jobVec)
	embeddingScore := math.Max(0, math.Min(100, cosine*100))
	return math.Min(100, embeddingScore*0.7+keywordScore*0.3)
}

// KeywordOverlap tokenizes both texts into lower-case alphabetic words of
// length >= 3, drops stopwords, and returns |resume ∩ job| / |job| * 100.
func KeywordOverlap(resumeText, jobContext string) float64 {
	resumeWords := extractKeywords(resumeText)
	jobWords := extractKeywords(jobContext)
	if len(jobWords) == 0 {
		return 0.0
	}

	overlap := 0
	for w := range jobWords {
		if resumeWords[w] {
			overlap++
		}
	}
	score := float64(overlap) / float64(len(jobWords)) * 100
	return math.Min(100, score)
}

func extractKeywords(text string) map[string]bool {
	words := keywordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if !stopwords[w] {
			set[w] = true
		}
	}
	return set
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
