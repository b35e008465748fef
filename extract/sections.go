package extract

import (
	"regexp"
	"strings"
)

// WholeDocument is returned as the start index by FindSection when no start
// heading matched; callers should then search the entire document.
const WholeDocument = -1

// Lines splits resume text into trimmed, non-empty lines.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// FindSection locates the first section whose heading matches one of the
// start patterns and returns its (startIndex, endIndex) bounds within lines.
// The section ends at the first subsequent line matching any end pattern, or
// at end of document. When no start pattern matches it returns
// (WholeDocument, len(lines)).
func FindSection(lines []string, startPatterns, endPatterns []*regexp.Regexp) (int, int) {
	start := WholeDocument
	for i, line := range lines {
		if matchesAny(line, startPatterns) {
			start = i
			break
		}
	}
	if start == WholeDocument {
		return WholeDocument, len(lines)
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if matchesAny(lines[i], endPatterns) {
			end = i
			break
		}
	}
	return start, end
}

// sectionWindow narrows lines to the section bounded by the given heading
// patterns, or returns all lines when the section is not found.
func sectionWindow(lines []string, startPatterns, endPatterns []*regexp.Regexp) []string {
	start, end := FindSection(lines, startPatterns, endPatterns)
	if start == WholeDocument {
		return lines
	}
	return lines[start:end]
}

func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func compileAll(exprs []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		patterns = append(patterns, regexp.MustCompile(e))
	}
	return patterns
}
