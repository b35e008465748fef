package extract

import "github.com/hirerank/backend/models"

// BuildProfile runs every extractor over the resume text and assembles the
// candidate profile. Each extractor is pure, so the profile for a given text
// is deterministic.
func BuildProfile(text string) models.CandidateProfile {
	return models.CandidateProfile{
		Name:           ExtractName(text),
		Email:          ExtractEmail(text),
		Phone:          ExtractPhone(text),
		Education:      ExtractEducation(text),
		Experience:     ExtractExperience(text),
		Certifications: ExtractCertifications(text),
		Skills:         ExtractSkills(text),
	}
}
