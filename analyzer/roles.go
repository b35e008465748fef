package analyzer

import (
	"math"
	"sort"
	"strings"

	"github.com/hirerank/backend/extract"
	"github.com/hirerank/backend/models"
)

// roleStacks maps known roles to layered technology stacks. Layer names
// double as keys in skill-match output.
var roleStacks = map[string]map[string][]string{
	"full stack developer": {
		"frontend":       {"react", "angular", "vue", "next.js", "svelte", "typescript", "html", "css", "tailwind", "bootstrap"},
		"backend":        {"django", "flask", "fastapi", "node.js", "express", "spring boot", "nest.js", "go", "rust"},
		"database":       {"sql", "mysql", "postgresql", "mongodb", "redis", "firebase", "dynamodb"},
		"infrastructure": {"docker", "kubernetes", "aws", "azure", "gcp", "git", "nginx", "ci/cd"},
	},
	"frontend developer": {
		"frameworks":       {"react", "angular", "vue", "next.js", "svelte", "gatsby"},
		"languages":        {"javascript", "typescript", "html", "css", "sass", "less"},
		"tools":            {"webpack", "vite", "babel", "npm", "yarn", "pnpm"},
		"ui_libraries":     {"tailwind", "bootstrap", "material-ui", "chakra-ui", "styled-components"},
		"state_management": {"redux", "zustand", "mobx", "context api", "recoil"},
	},
	"backend developer": {
		"languages":      {"python", "java", "node.js", "go", "rust", "c#", "php"},
		"frameworks":     {"django", "flask", "fastapi", "express", "spring boot", "nest.js", ".net"},
		"database":       {"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra"},
		"api":            {"rest api", "graphql", "grpc", "websockets"},
		"infrastructure": {"docker", "kubernetes", "aws", "azure", "microservices", "kafka", "rabbitmq"},
	},
	"data scientist": {
		"languages":       {"python", "r", "sql", "julia"},
		"ml_libraries":    {"scikit-learn", "tensorflow", "pytorch", "keras", "xgboost", "lightgbm"},
		"data_processing": {"pandas", "numpy", "scipy", "polars", "dask"},
		"visualization":   {"matplotlib", "seaborn", "plotly", "tableau", "power bi"},
		"cloud":           {"aws", "azure", "gcp", "databricks", "sagemaker"},
	},
	"machine learning engineer": {
		"ml_frameworks": {"tensorflow", "pytorch", "scikit-learn", "keras", "huggingface"},
		"mlops":         {"mlflow", "kubeflow", "airflow", "prefect", "dagster"},
		"deployment":    {"docker", "kubernetes", "fastapi", "flask", "aws", "gcp"},
		"monitoring":    {"prometheus", "grafana", "wandb", "tensorboard"},
		"specialized":   {"nlp", "computer vision", "deep learning", "transformers", "onnx"},
	},
	"data engineer": {
		"languages":     {"python", "java", "scala", "sql"},
		"processing":    {"spark", "pyspark", "flink", "hadoop", "hive"},
		"orchestration": {"airflow", "prefect", "dagster", "luigi"},
		"storage":       {"snowflake", "redshift", "bigquery", "databricks", "delta lake"},
		"streaming":     {"kafka", "kinesis", "pub/sub", "rabbitmq"},
		"cloud":         {"aws", "azure", "gcp", "terraform"},
	},
	"devops engineer": {
		"containerization": {"docker", "kubernetes", "helm", "podman"},
		"ci_cd":            {"jenkins", "github actions", "gitlab ci", "circleci", "travis ci"},
		"iac":              {"terraform", "ansible", "cloudformation", "pulumi"},
		"cloud":            {"aws", "azure", "gcp", "digitalocean"},
		"monitoring":       {"prometheus", "grafana", "elk stack", "datadog", "new relic"},
		"scripting":        {"bash", "python", "powershell", "groovy"},
	},
	"cloud engineer": {
		"cloud_platforms":  {"aws", "azure", "gcp", "alibaba cloud"},
		"iac":              {"terraform", "cloudformation", "pulumi", "ansible"},
		"containerization": {"docker", "kubernetes", "ecs", "aks", "gke"},
		"networking":       {"vpc", "load balancing", "cdn", "dns", "firewall"},
		"serverless":       {"lambda", "azure functions", "cloud functions", "fargate"},
	},
	"mobile developer": {
		"cross_platform": {"react native", "flutter", "ionic", "xamarin"},
		"native_ios":     {"swift", "objective-c", "xcode", "swiftui"},
		"native_android": {"kotlin", "java", "android studio", "jetpack compose"},
		"backend":        {"firebase", "aws amplify", "supabase", "rest api"},
		"tools":          {"git", "fastlane", "app center", "testflight"},
	},
	"qa engineer": {
		"automation":  {"selenium", "cypress", "playwright", "puppeteer", "appium"},
		"frameworks":  {"pytest", "jest", "junit", "testng", "mocha"},
		"api_testing": {"postman", "rest assured", "karate", "insomnia"},
		"performance": {"jmeter", "gatling", "locust", "k6"},
		"tools":       {"jira", "testrail", "git", "ci/cd", "docker"},
	},
}

var softwareEngineerSkills = []string{
	"python", "java", "c++", "c#", "javascript", "typescript",
	"git", "github", "bitbucket", "gitlab", "rest api", "graphql",
	"data structures", "algorithms", "oop", "design patterns",
	"unit testing", "integration testing", "ci/cd", "jenkins",
	"docker", "kubernetes", "agile", "scrum", "debugging", "system design",
}

// roleSkills is the flat expected-skills table used by the ranking flow.
var roleSkills = map[string][]string{
	"software engineer": softwareEngineerSkills,
	// common shorthand for the same role
	"sde": softwareEngineerSkills,
	"full stack developer": {
		"react", "next.js", "angular", "vue", "node.js", "express",
		"html", "css", "javascript", "typescript", "tailwind", "bootstrap",
		"mongodb", "mysql", "postgresql", "firebase", "rest api", "graphql",
		"docker", "aws", "nginx", "ci/cd", "microservices",
	},
	"frontend developer": {
		"react", "next.js", "vue", "angular", "svelte", "typescript",
		"html", "css", "sass", "less", "webpack", "vite", "redux",
		"responsive design", "ui/ux", "accessibility", "figma",
	},
	"backend developer": {
		"python", "java", "go", "node.js", "express", "django", "flask", "fastapi",
		"sql", "mongodb", "postgresql", "redis", "elasticsearch", "rest api", "graphql",
		"microservices", "docker", "kubernetes", "aws", "gcp", "azure", "rabbitmq", "kafka",
	},
	"data scientist": {
		"python", "r", "sql", "pandas", "numpy", "matplotlib", "seaborn",
		"scikit-learn", "tensorflow", "pytorch", "keras", "statistics",
		"data visualization", "feature engineering", "ml algorithms", "nlp",
		"deep learning", "data preprocessing", "jupyter", "azure ml", "aws sagemaker",
	},
	"machine learning engineer": {
		"python", "tensorflow", "pytorch", "scikit-learn", "mlops", "docker", "kubernetes",
		"mlflow", "airflow", "aws", "gcp", "feature store", "deep learning", "computer vision",
		"nlp", "huggingface", "transformers", "model optimization", "api deployment", "fastapi",
	},
	"data engineer": {
		"python", "java", "scala", "spark", "pyspark", "hadoop", "hive",
		"airflow", "kafka", "flink", "etl", "data pipelines", "data warehousing",
		"snowflake", "redshift", "bigquery", "aws glue", "azure data factory",
		"lakehouse", "databricks", "delta lake", "postgresql", "mongodb",
	},
	"data analyst": {
		"sql", "excel", "power bi", "tableau", "looker", "python",
		"pandas", "statistics", "data visualization", "data cleaning",
		"reporting", "dashboarding", "storytelling",
	},
	"devops engineer": {
		"linux", "bash", "shell scripting", "docker", "kubernetes",
		"jenkins", "gitlab ci", "aws", "azure", "gcp", "terraform", "ansible",
		"prometheus", "grafana", "elk stack", "ci/cd", "monitoring", "helm", "nginx",
	},
	"cloud engineer": {
		"aws", "azure", "gcp", "terraform", "cloudformation", "docker", "kubernetes",
		"lambda", "serverless", "cloudwatch", "networking", "load balancing",
		"security", "iam", "s3", "ec2", "vpc", "dns", "cdn",
	},
	"site reliability engineer": {
		"linux", "kubernetes", "prometheus", "grafana", "monitoring",
		"incident response", "sre", "devops", "ansible", "terraform", "aws", "gcp", "python",
	},
	"cybersecurity analyst": {
		"network security", "penetration testing", "siem", "splunk", "firewall",
		"vulnerability assessment", "incident response", "forensics", "python",
		"wireshark", "nmap", "burp suite", "owasp", "compliance", "iso 27001",
	},
	"network engineer": {
		"cisco", "routing", "switching", "tcp/ip", "vpn", "firewall",
		"network troubleshooting", "lan", "wan", "ospf", "bgp", "load balancer", "network monitoring",
	},
	"product manager": {
		"product strategy", "roadmap", "agile", "scrum", "user research",
		"data analysis", "stakeholder management", "a/b testing", "sql", "jira", "analytics", "kpi tracking",
	},
	"project manager": {
		"project management", "agile", "scrum", "kanban", "risk management",
		"budgeting", "stakeholder communication", "pmp", "jira", "ms project", "team leadership",
	},
	"business analyst": {
		"requirements gathering", "sql", "excel", "tableau", "power bi",
		"data modeling", "documentation", "agile", "jira", "process improvement",
	},
	"ui/ux designer": {
		"figma", "sketch", "adobe xd", "photoshop", "illustrator",
		"wireframing", "prototyping", "design systems", "responsive design",
		"usability testing", "user research", "interaction design", "accessibility",
	},
	"mobile developer": {
		"react native", "flutter", "swift", "kotlin", "ios", "android",
		"firebase", "mobile ui", "push notifications", "api integration",
		"xcode", "android studio",
	},
	"systems administrator": {
		"linux", "windows server", "active directory", "bash", "powershell",
		"vmware", "backup", "networking", "monitoring", "troubleshooting", "security",
	},
}

// resolveRoleKey maps a free-form role string onto a table key. Exact match
// first; otherwise the longest key that contains, or is contained in, the
// normalized role, with a lexicographic tie-break so resolution never
// depends on map iteration order.
func resolveRoleKey(role string, keys []string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(role))
	if normalized == "" {
		return "", false
	}

	sort.Strings(keys)
	for _, k := range keys {
		if k == normalized {
			return k, true
		}
	}

	best := ""
	for _, k := range keys {
		if !strings.Contains(normalized, k) && !strings.Contains(k, normalized) {
			continue
		}
		if len(k) > len(best) {
			best = k
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func stackKeys() []string {
	keys := make([]string, 0, len(roleStacks))
	for k := range roleStacks {
		keys = append(keys, k)
	}
	return keys
}

// MatchRoleSkills compares the candidate's skills against every layer of the
// role's technology stack. Unknown roles yield an empty result.
func MatchRoleSkills(skills []string, role string) models.SkillMatchResult {
	key, ok := resolveRoleKey(role, stackKeys())
	if !ok {
		return models.SkillMatchResult{}
	}

	candidate := make(map[string]bool, len(skills))
	for _, s := range skills {
		candidate[strings.ToLower(strings.TrimSpace(s))] = true
	}

	result := make(models.SkillMatchResult, len(roleStacks[key]))
	for layer, layerSkills := range roleStacks[key] {
		var matched, missing []string
		for _, skill := range layerSkills {
			if candidate[strings.ToLower(skill)] {
				matched = append(matched, skill)
			} else {
				missing = append(missing, skill)
			}
		}
		result[layer] = models.LayerMatch{Matched: matched, Missing: missing}
	}
	return result
}

// CoveragePercentage reports per-layer coverage as matched/(matched+missing)
// rounded to one decimal place.
func CoveragePercentage(skills []string, role string) map[string]float64 {
	analysis := MatchRoleSkills(skills, role)
	if len(analysis) == 0 {
		return map[string]float64{}
	}

	coverage := make(map[string]float64, len(analysis))
	for layer, lm := range analysis {
		total := len(lm.Matched) + len(lm.Missing)
		if total == 0 {
			coverage[layer] = 0.0
			continue
		}
		pct := float64(len(lm.Matched)) / float64(total) * 100
		coverage[layer] = math.Round(pct*10) / 10
	}
	return coverage
}

// IsRoleMatch is true only when the candidate has at least one matched skill
// in every layer of the role's stack.
func IsRoleMatch(skills []string, role string) bool {
	analysis := MatchRoleSkills(skills, role)
	if len(analysis) == 0 {
		return false
	}
	for _, lm := range analysis {
		if len(lm.Matched) == 0 {
			return false
		}
	}
	return true
}

// SummarizeSkillMatch flattens the per-layer analysis into display strings,
// using "-" for empty sides.
func SummarizeSkillMatch(skills []string, role string) models.SkillSummary {
	analysis := MatchRoleSkills(skills, role)
	summary := models.SkillSummary{
		SkillMatch:   map[string]string{},
		SkillMissing: map[string]string{},
	}
	for layer, lm := range analysis {
		if len(lm.Matched) > 0 {
			summary.SkillMatch[layer] = strings.Join(lm.Matched, ", ")
		} else {
			summary.SkillMatch[layer] = "-"
		}
		if len(lm.Missing) > 0 {
			summary.SkillMissing[layer] = strings.Join(lm.Missing, ", ")
		} else {
			summary.SkillMissing[layer] = "-"
		}
	}
	return summary
}

// RoleSkills returns the expected skill list for a job title, resolving
// partial matches the same way as the layered stacks and finally falling
// back to extracting skills from the title text itself.
func RoleSkills(jobTitle string) []string {
	keys := make([]string, 0, len(roleSkills))
	for k := range roleSkills {
		keys = append(keys, k)
	}
	if key, ok := resolveRoleKey(jobTitle, keys); ok {
		return roleSkills[key]
	}
	return extract.ExtractSkills(jobTitle)
}
