package analysis

import (
	"fmt"
	"strings"
)

const maxListedSkills = 3

// Insights turns an assessment into ordered strengths and improvement areas.
// Rules run in a fixed order and each contributes at most one line.
func Insights(a Assessment) (strengths, improvements []string) {
	strengths = make([]string, 0)
	improvements = make([]string, 0)

	cvLevel, jdLevel := a.CV.Seniority, a.JD.Seniority
	switch {
	case a.ExperienceScore == 1.0 && cvLevel == jdLevel:
		strengths = append(strengths, fmt.Sprintf("Meets required seniority (%s)", jdLevel))
	case a.ExperienceScore == 1.0 && cvLevel == SenioritySenior && atMostJunior(jdLevel):
		strengths = append(strengths, "Exceeds experience requirements with senior-level background")
	case a.ExperienceScore == 0.0:
		improvements = append(improvements, fmt.Sprintf("Highlight experience matching the %s level", jdLevel))
	}

	switch {
	case a.SkillRatio >= 0.8:
		strengths = append(strengths, "Excellent skill overlap with the job requirements")
	case a.SkillRatio >= 0.5:
		strengths = append(strengths, "Good foundation in core skills")
	default:
		improvements = append(improvements, "Significant skill gap against the job requirements")
	}

	cvTech := a.CV.Skills[CategoryTechnical]
	jdTech := a.JD.Skills[CategoryTechnical]
	if matched := intersect(cvTech, jdTech); len(matched) > 0 {
		strengths = append(strengths, "Matched technical skills: "+joinFirst(matched, maxListedSkills))
	}
	if missing := subtract(jdTech, cvTech); len(missing) > 0 {
		improvements = append(improvements, "Missing technical skills: "+joinFirst(missing, maxListedSkills))
	}

	switch {
	case a.Pair.Semantic > 0.75:
		strengths = append(strengths, "Strong strategic fit with the role")
	case a.Pair.Semantic < 0.40:
		improvements = append(improvements, "Align terminology with the job posting")
	}

	return strengths, improvements
}

// atMostJunior treats an unstated requirement as below Junior.
func atMostJunior(level Seniority) bool {
	return level == SeniorityJunior || level == SeniorityNotSpecified
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
