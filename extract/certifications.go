package extract

import (
	"regexp"
	"strings"

	"github.com/hirerank/backend/models"
)

const maxCertifications = 10

var (
	certificationStartPatterns = compileAll([]string{
		`(?i)^\s*certifications?(?:\s+(?:and|&)\s+\w+)?\s*:?\s*$`,
		`(?i)^\s*licenses?(?:\s+(?:and|&)\s+certifications?)?\s*:?\s*$`,
		`(?i)^\s*professional\s+certifications?\s*:?\s*$`,
	})
	certificationEndPatterns = compileAll([]string{
		`(?i)^\s*(?:work\s+|professional\s+)?experience\s*:?\s*$`,
		`(?i)^\s*education(?:al)?(?:\s+\w+)?\s*:?\s*$`,
		`(?i)^\s*(?:technical\s+)?skills\s*:?\s*$`,
		`(?i)^\s*projects?\s*:?\s*$`,
		`(?i)^\s*(?:achievements?|awards?|references?)\s*:?\s*$`,
	})

	// Named certification families, most specific first.
	certificationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bAWS\s+Certified\s+[A-Za-z][A-Za-z -]*[A-Za-z]`),
		regexp.MustCompile(`(?i)\b(?:Microsoft|Azure)\s+Certified[:\s]+[A-Za-z][A-Za-z -]*[A-Za-z]`),
		regexp.MustCompile(`(?i)\bGoogle\s+(?:Cloud\s+)?(?:Certified|Professional)\s+[A-Za-z][A-Za-z -]*[A-Za-z]`),
		regexp.MustCompile(`(?i)\bCISSP\b`),
		regexp.MustCompile(`(?i)\bCEH\b`),
		regexp.MustCompile(`(?i)\bCompTIA\s+[A-Za-z+]+`),
		regexp.MustCompile(`(?i)\bCCN[AP]\b`),
		regexp.MustCompile(`(?i)\bCK[AS]D?\b`),
		regexp.MustCompile(`(?i)\bCertified\s+Kubernetes\s+[A-Za-z][A-Za-z ]*[A-Za-z]`),
		regexp.MustCompile(`(?i)\b[A-Z][A-Za-z]+\s+Certified\s+[A-Za-z][A-Za-z -]*[A-Za-z]`),
		regexp.MustCompile(`(?i)\bCertificate\s+(?:in|of)\s+[A-Za-z][A-Za-z -]*[A-Za-z]`),
	}

	certYearPattern = regexp.MustCompile(`\b(19[89]\d|20[0-2]\d)\b`)
	issuerPattern   = regexp.MustCompile(`(?i)\b(?:issued\s+by|by|from)\s+([A-Z][A-Za-z&. ]{2,40})`)

	looseCertPattern = regexp.MustCompile(`(?i)certifi(?:ed|cate|cation)`)
)

// ExtractCertifications matches a library of named certification patterns
// against the certification section (or the whole document). A loose pass
// over "certified"/"certificate" lines covers resumes the library misses.
func ExtractCertifications(text string) []models.Certification {
	lines := Lines(text)
	window := sectionWindow(lines, certificationStartPatterns, certificationEndPatterns)

	certs := make([]models.Certification, 0, maxCertifications)
	seen := make(map[string]bool)

	add := func(name, line string) bool {
		name = strings.Trim(name, " .,;:-|•\t")
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			return false
		}
		seen[key] = true

		year := models.NotSpecified
		if y := certYearPattern.FindString(line); y != "" {
			year = y
		}
		issuer := models.NotSpecified
		if m := issuerPattern.FindStringSubmatch(line); m != nil {
			issuer = strings.Trim(m[1], " .,")
		}

		certs = append(certs, models.Certification{
			Name:   name,
			Issuer: issuer,
			Year:   year,
		})
		return len(certs) >= maxCertifications
	}

	for _, line := range window {
		for _, p := range certificationPatterns {
			m := p.FindString(line)
			if m == "" {
				continue
			}
			if add(m, line) {
				return certs
			}
			break
		}
	}

	if len(certs) == 0 {
		for _, line := range lines {
			if !looseCertPattern.MatchString(line) {
				continue
			}
			if matchesAny(line, certificationStartPatterns) {
				continue
			}
			if add(strings.Trim(line, " .,;:-|•\t"), line) {
				break
			}
		}
	}
	return certs
}
