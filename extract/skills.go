package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// skillTaxonomy maps skill categories to canonical tokens matched against
// resume text. Matching is whole-word and case-insensitive; no frequency
// weighting and no negation handling ("no experience with X" still counts).
var skillTaxonomy = map[string][]string{
	"programming": {
		"python", "java", "javascript", "typescript", "c++", "c#", "ruby",
		"go", "rust", "scala", "kotlin", "swift", "php", "r", "matlab",
	},
	"web": {
		"react", "angular", "vue", "node.js", "express", "django", "flask",
		"fastapi", "spring", "asp.net", "html", "css", "sass", "webpack",
	},
	"data": {
		"sql", "mongodb", "postgresql", "mysql", "redis", "elasticsearch",
		"spark", "hadoop", "kafka", "airflow", "tableau", "power bi",
	},
	"ml_ai": {
		"machine learning", "deep learning", "neural networks", "tensorflow",
		"pytorch", "keras", "scikit-learn", "nlp", "computer vision", "bert",
		"transformers", "gan", "reinforcement learning",
	},
	"cloud": {
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
		"jenkins", "ci/cd", "github actions", "gitlab", "serverless",
	},
	"soft_skills": {
		"leadership", "communication", "teamwork", "problem solving",
		"analytical", "critical thinking", "agile", "scrum", "project management",
	},
}

// skillPatterns is built once from the taxonomy; token order is preserved
// per category for deterministic matching.
var skillPatterns = buildSkillPatterns()

type skillPattern struct {
	token string
	re    *regexp.Regexp
}

func buildSkillPatterns() []skillPattern {
	categories := make([]string, 0, len(skillTaxonomy))
	for c := range skillTaxonomy {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var patterns []skillPattern
	for _, c := range categories {
		for _, token := range skillTaxonomy[c] {
			patterns = append(patterns, skillPattern{
				token: token,
				re:    wholeWordPattern(token),
			})
		}
	}
	return patterns
}

// wholeWordPattern escapes the token and anchors it with word boundaries.
// Boundaries are applied only where the token edge is a word character, so
// tokens like "c++" or ".net" remain matchable.
func wholeWordPattern(token string) *regexp.Regexp {
	expr := regexp.QuoteMeta(strings.ToLower(token))
	runes := []rune(token)
	if isWordRune(runes[0]) {
		expr = `\b` + expr
	}
	if isWordRune(runes[len(runes)-1]) {
		expr += `\b`
	}
	return regexp.MustCompile(expr)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ExtractSkills matches the full taxonomy against the resume text and
// returns the found skills title-cased, deduplicated and sorted.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]bool)
	skills := make([]string, 0, 16)
	for _, p := range skillPatterns {
		if !p.re.MatchString(lower) {
			continue
		}
		display := titleCase(p.token)
		if seen[display] {
			continue
		}
		seen[display] = true
		skills = append(skills, display)
	}
	sort.Strings(skills)
	return skills
}

// titleCase upper-cases the first letter of every alphabetic run, leaving
// punctuation intact ("node.js" -> "Node.Js", "c++" -> "C++").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
