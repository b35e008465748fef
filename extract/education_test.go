package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirerank/backend/models"
)

func TestExtractEducation_StructuredEntry(t *testing.T) {
	text := `Jane Doe

Education
Bachelor of Science in Computer Science
Stanford University
2016 - 2020

Skills
Python`

	entries := ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science", entries[0].Degree)
	assert.Equal(t, "Stanford University", entries[0].Institution)
	assert.Equal(t, "2016 - 2020", entries[0].Year)
}

func TestExtractEducation_SingleYear(t *testing.T) {
	text := "Education\nMBA in Finance\nHarvard Business School\n2018"

	entries := ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "MBA in Finance", entries[0].Degree)
	assert.Equal(t, "2018", entries[0].Year)
}

func TestExtractEducation_InstitutionNotSpecified(t *testing.T) {
	text := "Education\nBachelor of Engineering"

	entries := ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.Equal(t, models.NotSpecified, entries[0].Institution)
	assert.Equal(t, models.NotSpecified, entries[0].Year)
}

func TestExtractEducation_AcronymInstitution(t *testing.T) {
	text := "Education\nMaster of Technology\nIIT Institute of Technology Delhi"

	entries := ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.NotEqual(t, models.NotSpecified, entries[0].Institution)
	assert.Contains(t, entries[0].Institution, "Institute of Technology")
}

func TestExtractEducation_DeduplicatesDegrees(t *testing.T) {
	text := `Education
Bachelor of Science in Physics
Oxford University
Bachelor of Science in Physics
Oxford University`

	entries := ExtractEducation(text)
	assert.Len(t, entries, 1)
}

func TestExtractEducation_LoosePass(t *testing.T) {
	text := "Completed a degree program from National Open School in 2015"

	entries := ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Degree, "degree program")
	assert.Contains(t, entries[0].Institution, "National Open School")
}

func TestExtractEducation_LoosePassOrdersYearRange(t *testing.T) {
	text := "Completed a degree program from National Open School during 2020 after enrolling in 2016"

	entries := ExtractEducation(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "2016 - 2020", entries[0].Year)
}

func TestExtractEducation_Empty(t *testing.T) {
	assert.Empty(t, ExtractEducation("no academic background mentioned"))
}

func TestCleanFieldOfStudy_TruncatesAtWordBoundary(t *testing.T) {
	long := "Computer Science and Engineering with a Specialization in Artificial Intelligence"
	got := cleanFieldOfStudy(long)
	assert.LessOrEqual(t, len(got), 60)
	assert.NotRegexp(t, `\s$`, got)
	assert.Contains(t, got, "Computer Science")
}

func TestCleanFieldOfStudy_StripsTrailingClauses(t *testing.T) {
	assert.Equal(t, "Economics", cleanFieldOfStudy("Economics from Yale, 2019"))
}
