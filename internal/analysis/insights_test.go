package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsightsStrongCandidate(t *testing.T) {
	cv := Profile{
		Skills:    skills(CategoryTechnical, "python", "django", "sql", "docker"),
		Seniority: SenioritySenior,
	}
	jd := Profile{
		Skills:    skills(CategoryTechnical, "python", "django", "sql", "docker"),
		Seniority: SenioritySenior,
	}
	a := Assessment{CV: cv, JD: jd, ExperienceScore: 1, SkillRatio: 1, Pair: SimilarityPair{Semantic: 0.8}}

	strengths, improvements := Insights(a)
	assert.Equal(t, []string{
		"Meets required seniority (Senior)",
		"Excellent skill overlap with the job requirements",
		"Matched technical skills: django, docker, python",
		"Strong strategic fit with the role",
	}, strengths)
	assert.Empty(t, improvements)
	assert.NotNil(t, improvements)
}

func TestInsightsWeakCandidate(t *testing.T) {
	cv := Profile{Skills: skills(CategoryTechnical, "html"), Seniority: SeniorityJunior}
	jd := Profile{Skills: skills(CategoryTechnical, "go", "kubernetes", "aws", "docker"), Seniority: SenioritySenior}
	a := Assessment{CV: cv, JD: jd, ExperienceScore: 0, SkillRatio: 0, Pair: SimilarityPair{Semantic: 0.2}}

	strengths, improvements := Insights(a)
	assert.Empty(t, strengths)
	assert.Equal(t, []string{
		"Highlight experience matching the Senior level",
		"Significant skill gap against the job requirements",
		"Missing technical skills: aws, docker, go",
		"Align terminology with the job posting",
	}, improvements)
}

func TestInsightsMiddleBands(t *testing.T) {
	cv := Profile{Skills: SkillSet{}, Seniority: SenioritySenior}
	jd := Profile{Skills: SkillSet{}, Seniority: SeniorityNotSpecified}
	a := Assessment{CV: cv, JD: jd, ExperienceScore: 1, SkillRatio: 0.6, Pair: SimilarityPair{Semantic: 0.5}}

	strengths, improvements := Insights(a)
	assert.Equal(t, []string{
		"Exceeds experience requirements with senior-level background",
		"Good foundation in core skills",
	}, strengths)
	assert.Empty(t, improvements)
}

func TestInsightsAdjacentLevelsEmitNothing(t *testing.T) {
	cv := Profile{Skills: SkillSet{}, Seniority: SeniorityMid}
	jd := Profile{Skills: SkillSet{}, Seniority: SenioritySenior}
	a := Assessment{CV: cv, JD: jd, ExperienceScore: 0.5, SkillRatio: 0.8, Pair: SimilarityPair{Semantic: 0.5}}

	strengths, improvements := Insights(a)
	assert.Equal(t, []string{"Excellent skill overlap with the job requirements"}, strengths)
	assert.Empty(t, improvements)
}
