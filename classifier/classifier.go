package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/hirerank/backend/models"
)

// Provider asks a generative model to classify a resume and returns its raw
// text response.
type Provider interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// Classify runs the dynamic role classification. It builds a prompt from the
// candidate profile and target role, parses the provider's JSON response and
// backfills any missing required key. Provider failure or unparseable output
// falls back to the static keyword classifier, so a classification is always
// returned.
func Classify(ctx context.Context, provider Provider, profile models.CandidateProfile, jobTitle, jobDescription string) *models.DynamicClassification {
	if provider == nil {
		return StaticClassify(profile, jobTitle)
	}

	prompt, err := buildPrompt(profile, jobTitle, jobDescription)
	if err != nil {
		log.Printf("[Classifier] Failed to build prompt: %v", err)
		return StaticClassify(profile, jobTitle)
	}

	raw, err := provider.Classify(ctx, prompt)
	if err != nil {
		log.Printf("[Classifier] Provider call failed, using static classification: %v", err)
		return StaticClassify(profile, jobTitle)
	}

	var result models.DynamicClassification
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &result); err != nil {
		log.Printf("[Classifier] Failed to parse provider response, using static classification: %v", err)
		return StaticClassify(profile, jobTitle)
	}

	backfill(&result)
	return &result
}

// buildPrompt renders the profile as JSON inside an instruction block that
// asks for role-aware skill categorization.
func buildPrompt(profile models.CandidateProfile, jobTitle, jobDescription string) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal profile: %w", err)
	}

	var jobContext strings.Builder
	if jobTitle != "" {
		fmt.Fprintf(&jobContext, "\n**Target Job Role:** %s", jobTitle)
	}
	if jobDescription != "" {
		fmt.Fprintf(&jobContext, "\n**Job Description:** %s", jobDescription)
	}

	prompt := fmt.Sprintf(`You are an expert recruiter with deep knowledge across all industries. Analyze the following resume and provide intelligent skill matching for the target role.

**Resume Data:**
%s
%s

**Your Task:**
1. Understand what skills the target role actually requires. Do not limit yourself to predefined categories: a "Teacher" needs classroom management and curriculum design, a "Software Engineer" needs languages and frameworks.
2. Categorize the candidate's skills. For technical roles: frontend (web UI), backend (server-side), database (data tools), infra (cloud/DevOps). For non-technical roles reinterpret the categories: frontend = customer-facing skills, backend = core competencies, database = tools/systems, infra = supporting skills and certifications.
3. Match the candidate's skills against the role's requirements, including implicit skills found in experience descriptions.
4. Identify the important skills missing for this role.

**Output Format (MUST be valid JSON):**
{
  "frontend": ["relevant skills found"],
  "backend": ["core competency skills found"],
  "database": ["tools/systems skills found"],
  "infra": ["supporting skills found"],
  "matched_role": "the target job title or best matching role",
  "role_confidence": "high/medium/low",
  "skill_match": {"frontend": [], "backend": [], "database": [], "infra": []},
  "skill_missing": {"frontend": [], "backend": [], "database": [], "infra": []},
  "recommendations": "brief personalized recommendation for this role"
}

Only return valid JSON, nothing else. If a category has no skills, use an empty array.`,
		string(profileJSON), jobContext.String())

	return prompt, nil
}

// stripCodeFences removes an optional markdown code block wrapper from a
// model response.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// backfill fills required keys the model left out instead of failing the
// classification.
func backfill(c *models.DynamicClassification) {
	if c.Frontend == nil {
		c.Frontend = []string{}
	}
	if c.Backend == nil {
		c.Backend = []string{}
	}
	if c.Database == nil {
		c.Database = []string{}
	}
	if c.Infra == nil {
		c.Infra = []string{}
	}
	if c.MatchedRole == "" {
		c.MatchedRole = "General Developer"
	}
	if c.SkillMatch == nil {
		c.SkillMatch = emptyCategoryMap()
	}
	if c.SkillMissing == nil {
		c.SkillMissing = emptyCategoryMap()
	}
}

func emptyCategoryMap() map[string][]string {
	return map[string][]string{
		"frontend": {},
		"backend":  {},
		"database": {},
		"infra":    {},
	}
}
