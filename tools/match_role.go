package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hirerank/backend/analyzer"
)

// MatchRoleTool compares a skill list against a role's technology stack.
type MatchRoleTool struct{}

// NewMatchRoleTool creates a new match role tool
func NewMatchRoleTool() *MatchRoleTool {
	return &MatchRoleTool{}
}

// MatchRoleInput is the input for the match_role tool
type MatchRoleInput struct {
	Skills []string `json:"skills"`
	Role   string   `json:"role"`
}

// MatchRoleOutput is the result of the match_role tool
type MatchRoleOutput struct {
	SkillStack    interface{}        `json:"skill_stack_analysis"`
	SkillCoverage map[string]float64 `json:"skill_coverage"`
	IsRoleMatch   bool               `json:"is_role_match"`
}

func (t *MatchRoleTool) Name() string {
	return "match_role"
}

func (t *MatchRoleTool) Description() string {
	return "Compare a candidate's skill list against a role's layered technology stack. Returns matched/missing skills per layer, coverage percentages, and whether the candidate covers every layer."
}

func (t *MatchRoleTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"skills": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Candidate skill list",
			},
			"role": map[string]interface{}{
				"type":        "string",
				"description": "Target role, e.g. 'Backend Developer'",
			},
		},
		"required": []string{"skills", "role"},
	}
}

func (t *MatchRoleTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var params MatchRoleInput
	if err := json.Unmarshal(input, &params); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if strings.TrimSpace(params.Role) == "" {
		return NewErrorResult("role is required")
	}

	return NewSuccessResult(MatchRoleOutput{
		SkillStack:    analyzer.MatchRoleSkills(params.Skills, params.Role),
		SkillCoverage: analyzer.CoveragePercentage(params.Skills, params.Role),
		IsRoleMatch:   analyzer.IsRoleMatch(params.Skills, params.Role),
	})
}
