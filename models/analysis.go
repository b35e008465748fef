package models

import "time"

// Sentinel values used by the extractors. Every profile field is populated
// with either real data or one of these, never left empty.
const (
	NotFound     = "Not found"
	NotSpecified = "Not specified"
)

// CandidateProfile is the structured information extracted from one resume.
// It is built once per resume text and not mutated afterwards.
type CandidateProfile struct {
	Name           string            `json:"name" firestore:"name"`
	Email          string            `json:"email" firestore:"email"`
	Phone          string            `json:"phone" firestore:"phone"`
	Education      []EducationEntry  `json:"education" firestore:"education"`
	Experience     []ExperienceEntry `json:"experience" firestore:"experience"`
	Certifications []Certification   `json:"certifications" firestore:"certifications"`
	Skills         []string          `json:"skills" firestore:"skills"`
}

// EducationEntry represents one degree found in the resume.
type EducationEntry struct {
	Degree      string `json:"degree" firestore:"degree"`
	Institution string `json:"institution" firestore:"institution"`
	Year        string `json:"year" firestore:"year"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}

// ExperienceEntry represents one position found in the resume.
type ExperienceEntry struct {
	Title       string `json:"title" firestore:"title"`
	Company     string `json:"company" firestore:"company"`
	Duration    string `json:"duration" firestore:"duration"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}

// Certification represents one certification found in the resume.
type Certification struct {
	Name   string `json:"name" firestore:"name"`
	Issuer string `json:"issuer" firestore:"issuer"`
	Year   string `json:"year,omitempty" firestore:"year,omitempty"`
}

// LayerMatch holds the matched and missing skills for one layer of a
// role's technology stack.
type LayerMatch struct {
	Matched []string `json:"matched" firestore:"matched"`
	Missing []string `json:"missing" firestore:"missing"`
}

// SkillMatchResult maps each layer of a role's stack to its match breakdown.
// An unknown role yields an empty (non-nil) result.
type SkillMatchResult map[string]LayerMatch

// SkillSummary is the comma-joined display form of a SkillMatchResult.
// Layers with no skills on a side show "-".
type SkillSummary struct {
	SkillMatch   map[string]string `json:"skill_match" firestore:"skillMatch"`
	SkillMissing map[string]string `json:"skill_missing" firestore:"skillMissing"`
}

// DynamicClassification is the AI role categorization of a candidate, or the
// static keyword fallback when the generative service is unavailable.
type DynamicClassification struct {
	Frontend        []string            `json:"frontend" firestore:"frontend"`
	Backend         []string            `json:"backend" firestore:"backend"`
	Database        []string            `json:"database" firestore:"database"`
	Infra           []string            `json:"infra" firestore:"infra"`
	MatchedRole     string              `json:"matched_role" firestore:"matchedRole"`
	RoleConfidence  string              `json:"role_confidence,omitempty" firestore:"roleConfidence,omitempty"`
	SkillMatch      map[string][]string `json:"skill_match" firestore:"skillMatch"`
	SkillMissing    map[string][]string `json:"skill_missing" firestore:"skillMissing"`
	Recommendations string              `json:"recommendations,omitempty" firestore:"recommendations,omitempty"`
}

// AnalysisResult is the complete outcome of analyzing one resume against a
// target role.
type AnalysisResult struct {
	Profile        CandidateProfile       `json:"profile"`
	JobTitle       string                 `json:"job_title"`
	ExpectedSkills []string               `json:"expected_skills"`
	SkillsFound    []string               `json:"skills_found"`
	SkillsMissing  []string               `json:"skills_missing"`
	SkillStack     SkillMatchResult       `json:"skill_stack_analysis"`
	SkillSummary   SkillSummary           `json:"skill_summary"`
	SkillCoverage  map[string]float64     `json:"skill_coverage"`
	IsRoleMatch    bool                   `json:"is_role_match"`
	MatchScore     float64                `json:"match_score"`
	Summary        string                 `json:"summary"`
	Classification *DynamicClassification `json:"gemini_analysis,omitempty"`
}

// AnalysisRecord is the stored form of an analysis in the rankings collection.
type AnalysisRecord struct {
	ID             string                 `json:"_id" firestore:"-"`
	CandidateName  string                 `json:"candidate_name" firestore:"candidateName"`
	JobTitle       string                 `json:"job_title" firestore:"jobTitle"`
	ResumeFilename string                 `json:"resume_filename" firestore:"resumeFilename"`
	Skills         []string               `json:"skills" firestore:"skills"`
	MatchScore     float64                `json:"match_score" firestore:"matchScore"`
	IsRoleMatch    bool                   `json:"is_role_match" firestore:"isRoleMatch"`
	Summary        string                 `json:"summary" firestore:"summary"`
	Profile        CandidateProfile       `json:"profile" firestore:"profile"`
	Classification *DynamicClassification `json:"gemini_analysis,omitempty" firestore:"classification,omitempty"`
	JobDescription string                 `json:"job_description,omitempty" firestore:"jobDescription"`
	Remarks        string                 `json:"remarks" firestore:"remarks"`
	UploadedAt     time.Time              `json:"uploaded_at" firestore:"uploadedAt"`
}
