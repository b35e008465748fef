package classifier

import (
	"strings"

	"github.com/hirerank/backend/models"
)

// techCategories buckets skills for the static fallback. Matching is
// substring in either direction, case-insensitive.
var techCategories = map[string][]string{
	"frontend": {
		"React", "ReactJS", "Angular", "Vue", "VueJS", "Next.js", "Nuxt.js",
		"HTML", "CSS", "JavaScript", "TypeScript", "jQuery", "Bootstrap",
		"Tailwind", "SASS", "LESS", "Webpack", "Vite", "Svelte", "Ember",
	},
	"backend": {
		"Django", "Flask", "FastAPI", "Node.js", "Express", "Spring Boot",
		"Spring", "Java", "Python", "Ruby on Rails", "PHP", "Laravel",
		".NET", "ASP.NET", "Go", "Golang", "Rust", "Scala", "Kotlin",
	},
	"database": {
		"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Cassandra",
		"Oracle", "SQL Server", "SQLite", "DynamoDB", "Elasticsearch",
		"Neo4j", "MariaDB", "CouchDB", "Firebase",
	},
	"infra": {
		"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "GitLab CI",
		"GitHub Actions", "CircleCI", "Terraform", "Ansible", "Chef", "Puppet",
		"Nginx", "Apache", "Linux", "CI/CD", "DevOps", "Microservices",
	},
}

var categoryOrder = []string{"frontend", "backend", "database", "infra"}

// StaticClassify buckets candidate skills into the four categories using the
// keyword table and, when no role was supplied, infers a role label from
// which categories are populated. The result always carries low confidence
// and an empty missing-skills map.
func StaticClassify(profile models.CandidateProfile, jobTitle string) *models.DynamicClassification {
	buckets := map[string][]string{
		"frontend": {},
		"backend":  {},
		"database": {},
		"infra":    {},
	}

	for _, skill := range profile.Skills {
		skillLower := strings.ToLower(skill)
		for _, category := range categoryOrder {
			if matchesCategory(skillLower, techCategories[category]) {
				if !containsString(buckets[category], skill) {
					buckets[category] = append(buckets[category], skill)
				}
				break
			}
		}
	}

	matchedRole := jobTitle
	if matchedRole == "" {
		matchedRole = inferRole(buckets)
	}

	return &models.DynamicClassification{
		Frontend:       buckets["frontend"],
		Backend:        buckets["backend"],
		Database:       buckets["database"],
		Infra:          buckets["infra"],
		MatchedRole:    matchedRole,
		RoleConfidence: "low",
		SkillMatch: map[string][]string{
			"frontend": buckets["frontend"],
			"backend":  buckets["backend"],
			"database": buckets["database"],
			"infra":    buckets["infra"],
		},
		SkillMissing:    emptyCategoryMap(),
		Recommendations: "AI analysis unavailable. Basic classification used.",
	}
}

func matchesCategory(skillLower string, keywords []string) bool {
	for _, keyword := range keywords {
		keywordLower := strings.ToLower(keyword)
		if strings.Contains(skillLower, keywordLower) || strings.Contains(keywordLower, skillLower) {
			return true
		}
	}
	return false
}

// inferRole labels the candidate from which buckets are populated, checked
// from strongest combination down.
func inferRole(buckets map[string][]string) string {
	hasFrontend := len(buckets["frontend"]) > 0
	hasBackend := len(buckets["backend"]) > 0
	hasDatabase := len(buckets["database"]) > 0
	hasInfra := len(buckets["infra"]) > 0

	switch {
	case hasFrontend && hasBackend && hasDatabase:
		return "Full Stack Developer"
	case hasFrontend && hasBackend:
		return "Full Stack Developer"
	case hasFrontend:
		return "Frontend Developer"
	case hasBackend:
		return "Backend Developer"
	case hasInfra:
		return "DevOps Engineer"
	case hasDatabase:
		return "Database Developer"
	default:
		return "General Developer"
	}
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
