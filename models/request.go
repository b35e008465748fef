package models

// RankResumeResponse represents the legacy /rank_resume response
// @Description Match score, extracted skills and summary for one resume
type RankResumeResponse struct {
	MatchScore      float64          `json:"match_score" example:"72.5"`
	SkillsExtracted []string         `json:"skills_extracted"`
	Summary         string           `json:"summary" example:"Good match: strong backend profile..."`
	CandidateInfo   CandidateProfile `json:"candidate_info"`
	ResumeFilename  string           `json:"resume_filename" example:"resume.pdf"`
	ProcessedAt     string           `json:"processed_at" example:"2024-01-15T10:30:00Z"`
}

// AnalyzeResumeResponse represents the /analyze_resume response
// @Description Full analysis of one resume against a job title
type AnalyzeResumeResponse struct {
	ID             string                 `json:"_id" example:"aBcD1234"`
	CandidateName  string                 `json:"candidate_name" example:"Jane Doe"`
	JobTitle       string                 `json:"job_title" example:"Full Stack Developer"`
	MatchScore     float64                `json:"match_score" example:"72.5"`
	Skills         []string               `json:"skills"`
	SkillsFound    []string               `json:"skills_found"`
	SkillsMissing  []string               `json:"skills_missing"`
	ExpectedSkills []string               `json:"expected_skills"`
	Summary        string                 `json:"summary"`
	Profile        CandidateProfile       `json:"profile"`
	SkillStack     SkillMatchResult       `json:"skill_stack_analysis"`
	SkillSummary   SkillSummary           `json:"skill_summary"`
	IsRoleMatch    bool                   `json:"is_role_match" example:"true"`
	SkillCoverage  map[string]float64     `json:"skill_coverage"`
	Classification *DynamicClassification `json:"gemini_analysis,omitempty"`
	ResumeFilename string                 `json:"resume_filename" example:"resume.pdf"`
	UploadedAt     string                 `json:"uploaded_at" example:"2024-01-15T10:30:00Z"`
}

// BatchAnalyzeResponse represents the /analyze_batch response
// @Description Analysis records for a batch of resumes
type BatchAnalyzeResponse struct {
	Count   int              `json:"count" example:"3"`
	Results []AnalysisRecord `json:"results"`
	Errors  []string         `json:"errors,omitempty"`
}

// RankingsResponse represents a ranked candidate listing
// @Description Candidates sorted by match score
type RankingsResponse struct {
	JobTitle string           `json:"job_title" example:"Full Stack Developer"`
	Count    int              `json:"count" example:"10"`
	Rankings []AnalysisRecord `json:"rankings"`
}

// HistoryResponse represents a chronological analysis listing
// @Description Analyses sorted by upload time
type HistoryResponse struct {
	Count   int              `json:"count" example:"25"`
	History []AnalysisRecord `json:"history"`
}

// TopPerformersResponse represents top candidates across all positions
// @Description Highest scoring candidates
type TopPerformersResponse struct {
	Count         int              `json:"count" example:"3"`
	TopPerformers []AnalysisRecord `json:"top_performers"`
}

// StatisticsResponse represents aggregate score statistics
// @Description Count and score statistics over stored analyses
type StatisticsResponse struct {
	TotalAnalyses int     `json:"total_analyses" example:"42"`
	AverageScore  float64 `json:"average_score" example:"61.3"`
	HighestScore  float64 `json:"highest_score" example:"93.0"`
	LowestScore   float64 `json:"lowest_score" example:"12.5"`
}

// RemarksResponse confirms a remarks update
// @Description Remarks update confirmation
type RemarksResponse struct {
	Message     string `json:"message" example:"Remarks updated successfully"`
	CandidateID string `json:"candidate_id" example:"aBcD1234"`
}

// DeleteResponse confirms a record deletion
// @Description Deletion confirmation
type DeleteResponse struct {
	Message     string `json:"message" example:"Candidate deleted successfully"`
	CandidateID string `json:"candidate_id" example:"aBcD1234"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"job_title is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
