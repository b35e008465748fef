package extract

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_Basic(t *testing.T) {
	text := "Proficient in Python and Docker, with production Kubernetes clusters on AWS."

	skills := ExtractSkills(text)
	assert.Equal(t, []string{"Aws", "Docker", "Kubernetes", "Python"}, skills)
}

func TestExtractSkills_PunctuatedTokens(t *testing.T) {
	text := "Languages: C++, C#. Frameworks: Node.js and ASP.NET. Pipelines with CI/CD."

	skills := ExtractSkills(text)
	assert.Contains(t, skills, "C++")
	assert.Contains(t, skills, "C#")
	assert.Contains(t, skills, "Node.Js")
	assert.Contains(t, skills, "Ci/Cd")
}

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	// "go" must not match inside "Google", "java" not inside "javascript"
	skills := ExtractSkills("Worked at Google on JavaScript tooling")
	assert.Contains(t, skills, "Javascript")
	assert.NotContains(t, skills, "Go")
	assert.NotContains(t, skills, "Java")
}

func TestExtractSkills_MultiWordAndSorted(t *testing.T) {
	text := "Background in machine learning and deep learning; reporting via Power BI."

	skills := ExtractSkills(text)
	assert.Contains(t, skills, "Machine Learning")
	assert.Contains(t, skills, "Deep Learning")
	assert.Contains(t, skills, "Power Bi")
	assert.True(t, sort.StringsAreSorted(skills))
}

func TestExtractSkills_NoMatches(t *testing.T) {
	assert.Empty(t, ExtractSkills("gardening, woodworking and cooking"))
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"node.js", "Node.Js"},
		{"c++", "C++"},
		{"machine learning", "Machine Learning"},
		{"scikit-learn", "Scikit-Learn"},
		{"AWS", "Aws"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in))
	}
}
