// Package skills scores fixed hard- and soft-skill catalogs against a job description and a résumé.
package skills

// hardSkills lists technical tools, systems and domain competencies.
// Order is part of the output contract.
var hardSkills = []string{
	"workday", "hcm", "lms", "sap", "oracle", "excel", "sql", "python", "javascript", "react",
	"api", "etl", "tableau", "powerbi", "jira", "confluence", "notion", "zapier", "make",
	"airtable", "talent acquisition", "recruiting", "compensation", "benefits", "union", "mou",
	"loa", "payroll", "compliance", "ofla", "fmla", "ada", "overtime", "hris", "sftp", "sso",
	"oauth", "webhook", "kafka",
}

// softSkills lists interpersonal and transferable skills.
var softSkills = []string{
	"communication", "collaboration", "leadership", "problem solving", "critical thinking",
	"time management", "attention to detail", "stakeholder management", "customer service",
	"adaptability", "conflict resolution", "teamwork", "mentorship", "analytical", "strategic",
}

// HardSkills returns a copy of the hard-skill catalog.
func HardSkills() []string {
	return append([]string(nil), hardSkills...)
}

// SoftSkills returns a copy of the soft-skill catalog.
func SoftSkills() []string {
	return append([]string(nil), softSkills...)
}
