package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirerank/backend/models"
)

type fakeProvider struct {
	response string
	err      error
	prompt   string
}

func (f *fakeProvider) Classify(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

var sampleProfile = models.CandidateProfile{
	Name:   "Jane Doe",
	Email:  "jane@example.com",
	Phone:  models.NotFound,
	Skills: []string{"React", "Django", "Postgresql", "Docker"},
}

func TestClassify_ParsesProviderJSON(t *testing.T) {
	provider := &fakeProvider{response: `{
		"frontend": ["React"],
		"backend": ["Django"],
		"database": ["Postgresql"],
		"infra": ["Docker"],
		"matched_role": "Full Stack Developer",
		"role_confidence": "high",
		"skill_match": {"frontend": ["React"], "backend": ["Django"], "database": [], "infra": []},
		"skill_missing": {"frontend": [], "backend": [], "database": [], "infra": []},
		"recommendations": "Strong full stack candidate."
	}`}

	got := Classify(context.Background(), provider, sampleProfile, "Full Stack Developer", "")
	require.NotNil(t, got)
	assert.Equal(t, "Full Stack Developer", got.MatchedRole)
	assert.Equal(t, "high", got.RoleConfidence)
	assert.Equal(t, []string{"React"}, got.Frontend)
	assert.Equal(t, "Strong full stack candidate.", got.Recommendations)

	assert.Contains(t, provider.prompt, "Jane Doe")
	assert.Contains(t, provider.prompt, "Full Stack Developer")
}

func TestClassify_StripsCodeFences(t *testing.T) {
	provider := &fakeProvider{response: "```json\n{\"matched_role\": \"Backend Developer\"}\n```"}

	got := Classify(context.Background(), provider, sampleProfile, "Backend Developer", "")
	require.NotNil(t, got)
	assert.Equal(t, "Backend Developer", got.MatchedRole)
}

func TestClassify_BackfillsMissingKeys(t *testing.T) {
	provider := &fakeProvider{response: `{"frontend": ["React"]}`}

	got := Classify(context.Background(), provider, sampleProfile, "", "")
	require.NotNil(t, got)
	assert.Equal(t, "General Developer", got.MatchedRole)
	assert.NotNil(t, got.Backend)
	assert.NotNil(t, got.Database)
	assert.NotNil(t, got.Infra)
	assert.Len(t, got.SkillMatch, 4)
	assert.Len(t, got.SkillMissing, 4)
}

func TestClassify_NilProviderUsesStatic(t *testing.T) {
	got := Classify(context.Background(), nil, sampleProfile, "Full Stack Developer", "")
	require.NotNil(t, got)
	assert.Equal(t, "low", got.RoleConfidence)
	assert.Equal(t, "AI analysis unavailable. Basic classification used.", got.Recommendations)
}

func TestClassify_ProviderErrorUsesStatic(t *testing.T) {
	provider := &fakeProvider{err: errors.New("deadline exceeded")}

	got := Classify(context.Background(), provider, sampleProfile, "Backend Developer", "")
	require.NotNil(t, got)
	assert.Equal(t, "low", got.RoleConfidence)
	assert.Equal(t, "Backend Developer", got.MatchedRole)
}

func TestClassify_UnparseableResponseUsesStatic(t *testing.T) {
	provider := &fakeProvider{response: "I cannot produce JSON today."}

	got := Classify(context.Background(), provider, sampleProfile, "Backend Developer", "")
	require.NotNil(t, got)
	assert.Equal(t, "low", got.RoleConfidence)
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripCodeFences(tt.in))
	}
}

func TestStaticClassify_BucketsSkills(t *testing.T) {
	got := StaticClassify(sampleProfile, "Full Stack Developer")

	assert.Equal(t, []string{"React"}, got.Frontend)
	assert.Equal(t, []string{"Django"}, got.Backend)
	assert.Equal(t, []string{"Postgresql"}, got.Database)
	assert.Equal(t, []string{"Docker"}, got.Infra)
	assert.Equal(t, "Full Stack Developer", got.MatchedRole)
	assert.Equal(t, got.Frontend, got.SkillMatch["frontend"])
}

func TestStaticClassify_InfersRole(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		want   string
	}{
		{"frontend and backend", []string{"React", "Django"}, "Full Stack Developer"},
		{"frontend only", []string{"React", "Css"}, "Frontend Developer"},
		{"backend only", []string{"Django", "Flask"}, "Backend Developer"},
		{"infra only", []string{"Docker", "Kubernetes"}, "DevOps Engineer"},
		{"database only", []string{"Oracle"}, "Database Developer"},
		{"nothing", nil, "General Developer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := models.CandidateProfile{Skills: tt.skills}
			got := StaticClassify(profile, "")
			assert.Equal(t, tt.want, got.MatchedRole)
		})
	}
}
