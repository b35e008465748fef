package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hirerank/backend/extract"
)

// ExtractProfileTool extracts a structured candidate profile from resume
// text without scoring it.
type ExtractProfileTool struct{}

// NewExtractProfileTool creates a new extract profile tool
func NewExtractProfileTool() *ExtractProfileTool {
	return &ExtractProfileTool{}
}

// ExtractProfileInput is the input for the extract_profile tool
type ExtractProfileInput struct {
	ResumeText string `json:"resume_text"`
}

func (t *ExtractProfileTool) Name() string {
	return "extract_profile"
}

func (t *ExtractProfileTool) Description() string {
	return "Extract a structured candidate profile (name, contact info, education, experience, certifications, skills) from resume text."
}

func (t *ExtractProfileTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "Plain text content of the resume",
			},
		},
		"required": []string{"resume_text"},
	}
}

func (t *ExtractProfileTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var params ExtractProfileInput
	if err := json.Unmarshal(input, &params); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if strings.TrimSpace(params.ResumeText) == "" {
		return NewErrorResult("resume_text is required")
	}

	profile := extract.BuildProfile(params.ResumeText)
	return NewSuccessResult(profile)
}
