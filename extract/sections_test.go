package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines_TrimsAndDropsEmpty(t *testing.T) {
	got := Lines("  first  \n\n\tsecond\n   \nthird")
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestFindSection_Bounded(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"Education",
		"BSc Computer Science",
		"Skills",
		"Python",
	}
	start, end := FindSection(lines, educationStartPatterns, educationEndPatterns)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)
}

func TestFindSection_RunsToEndOfDocument(t *testing.T) {
	lines := []string{"Education", "BSc Computer Science", "MIT University"}
	start, end := FindSection(lines, educationStartPatterns, educationEndPatterns)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestFindSection_NoHeading(t *testing.T) {
	lines := []string{"just some text", "no headings at all"}
	start, end := FindSection(lines, educationStartPatterns, educationEndPatterns)
	assert.Equal(t, WholeDocument, start)
	assert.Equal(t, 2, end)
}

func TestSectionWindow_FallsBackToAllLines(t *testing.T) {
	lines := []string{"a", "b", "c"}
	window := sectionWindow(lines, educationStartPatterns, educationEndPatterns)
	assert.Equal(t, lines, window)
}
