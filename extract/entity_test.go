package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirerank/backend/models"
)

func TestExtractEmail(t *testing.T) {
	text := "Jane Doe\njane.doe+work@example.co.uk\nPhone: 555-123-4567"
	assert.Equal(t, "jane.doe+work@example.co.uk", ExtractEmail(text))
}

func TestExtractEmail_NotFound(t *testing.T) {
	assert.Equal(t, models.NotFound, ExtractEmail("no contact details here"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "Call 555-123-4567 anytime", "555-123-4567"},
		{"dotted", "Phone: 555.123.4567", "555.123.4567"},
		{"parenthesized", "Contact: (555) 123-4567", "(555) 123-4567"},
		{"international", "Mobile: +62-812-3456-7890", "+62-812-3456-7890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractPhone_NotFound(t *testing.T) {
	assert.Equal(t, models.NotFound, ExtractPhone("email only: a@b.com"))
}

func TestExtractName_TopOfDocument(t *testing.T) {
	text := "Jane Doe\nSoftware Engineer\njane@example.com"
	assert.Equal(t, "Jane Doe", ExtractName(text))
}

func TestExtractName_StripsResumePrefix(t *testing.T) {
	text := "Resume - John Michael Smith\njohn@example.com"
	assert.Equal(t, "John Michael Smith", ExtractName(text))
}

func TestExtractName_SkipsContactLines(t *testing.T) {
	text := "Email Address Here\nLinkedIn Profile Page\nAlice Wong\nalice@example.com"
	assert.Equal(t, "Alice Wong", ExtractName(text))
}

func TestExtractName_LabeledFallback(t *testing.T) {
	text := "applicant details are listed further below\nName: Bob Carter and additional notes follow here"
	assert.Equal(t, "Bob Carter", ExtractName(text))
}

func TestExtractName_NotFound(t *testing.T) {
	text := "generic resume text without any candidate identification"
	assert.Equal(t, models.NotFound, ExtractName(text))
}
