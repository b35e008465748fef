package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hirerank/backend/analyzer"
)

// AnalyzeResumeTool runs the full analysis pipeline over raw resume text.
type AnalyzeResumeTool struct {
	analyzer *analyzer.Analyzer
}

// NewAnalyzeResumeTool creates a new analyze resume tool
func NewAnalyzeResumeTool(a *analyzer.Analyzer) *AnalyzeResumeTool {
	return &AnalyzeResumeTool{analyzer: a}
}

// AnalyzeResumeInput is the input for the analyze_resume tool
type AnalyzeResumeInput struct {
	ResumeText     string `json:"resume_text"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description,omitempty"`
}

func (t *AnalyzeResumeTool) Name() string {
	return "analyze_resume"
}

func (t *AnalyzeResumeTool) Description() string {
	return "Analyze resume text against a target job title. Returns the candidate profile, match score, role-stack skill analysis and an AI role classification."
}

func (t *AnalyzeResumeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "Plain text content of the resume",
			},
			"job_title": map[string]interface{}{
				"type":        "string",
				"description": "Target job title, e.g. 'Full Stack Developer'",
			},
			"job_description": map[string]interface{}{
				"type":        "string",
				"description": "Optional full job description for additional context",
			},
		},
		"required": []string{"resume_text", "job_title"},
	}
}

func (t *AnalyzeResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var params AnalyzeResumeInput
	if err := json.Unmarshal(input, &params); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if strings.TrimSpace(params.ResumeText) == "" {
		return NewErrorResult("resume_text is required")
	}
	if strings.TrimSpace(params.JobTitle) == "" {
		return NewErrorResult("job_title is required")
	}

	result := t.analyzer.Analyze(ctx, params.ResumeText, params.JobTitle, params.JobDescription)
	return NewSuccessResult(result)
}
