package analysis

import (
	"math"
	"sort"
)

const (
	minMatch = 0.05
	maxMatch = 0.98
)

// Comparison statuses and their presentation classes.
const (
	StatusExceeds       = "Exceeds Requirements"
	StatusMeets         = "Meets Requirements"
	StatusBelow         = "Below Requirements"
	StatusNoRequirement = "No Specific Requirement"
	StatusUnclear       = "Unclear"

	ClassExceeds = "exceeds"
	ClassMeets   = "meets"
	ClassBelow   = "below"
	ClassNeutral = "neutral"
)

var seniorityRank = map[Seniority]int{
	SeniorityJunior: 0,
	SeniorityMid:    1,
	SenioritySenior: 2,
}

var qualificationRank = map[Qualification]int{
	QualificationDiploma:   0,
	QualificationBachelors: 1,
	QualificationMasters:   2,
	QualificationPhD:       3,
}

// Assessment carries every intermediate value of one scoring run.
type Assessment struct {
	CV   Profile
	JD   Profile
	Pair SimilarityPair

	ExperienceScore float64
	EducationScore  float64
	SkillRatio      float64

	Matched []string
	Missing []string
	Extra   []string

	Weights  Weights
	Weighted float64

	// Fractions in [0,1].
	Match      float64
	Confidence float64
}

// Aggregate combines two profiles and their similarity signals.
func Aggregate(cv, jd Profile, pair SimilarityPair) Assessment {
	cvFlat := cv.Skills.Flatten()
	jdFlat := jd.Skills.Flatten()

	matched := intersect(cvFlat, jdFlat)
	missing := subtract(jdFlat, cvFlat)
	extra := subtract(cvFlat, jdFlat)

	a := Assessment{
		CV:              cv,
		JD:              jd,
		Pair:            pair,
		ExperienceScore: ExperienceMatch(cv.Seniority, jd.Seniority),
		EducationScore:  EducationMatch(cv.Education, jd.Education),
		SkillRatio:      SkillRatio(len(matched), len(jdFlat)),
		Matched:         matched,
		Missing:         missing,
		Extra:           extra,
	}

	a.Weights = SelectWeights(pair.Semantic, a.SkillRatio)
	a.Weighted = a.Weights.Apply(SubScores{
		Semantic:   pair.Semantic,
		Lexical:    pair.Lexical,
		Skills:     a.SkillRatio,
		Experience: a.ExperienceScore,
		Education:  a.EducationScore,
	})
	a.Match = clamp(a.Weighted, minMatch, maxMatch)
	a.Confidence = 1 - math.Abs(pair.Semantic-pair.Lexical)

	return a
}

// SkillRatio is matched/required, or 0 when the job lists no skills.
func SkillRatio(matched, required int) float64 {
	if required == 0 {
		return 0
	}
	return float64(matched) / float64(required)
}

// ExperienceMatch scores seniority fit on the Junior < Mid < Senior scale.
func ExperienceMatch(cv, jd Seniority) float64 {
	if jd == SeniorityNotSpecified || cv == jd {
		return 1.0
	}
	cvRank, okCV := seniorityRank[cv]
	jdRank, okJD := seniorityRank[jd]
	if !okCV || !okJD {
		return 0.5
	}
	switch abs(cvRank - jdRank) {
	case 1:
		return 0.5
	default:
		return 0.0
	}
}

// EducationMatch is 1 when the job asks for nothing or when any required
// qualification appears verbatim among the candidate's.
func EducationMatch(cv, jd []Qualification) float64 {
	if len(jd) == 0 || containsQualification(jd, QualificationNotSpecified) {
		return 1.0
	}
	for _, req := range jd {
		if containsQualification(cv, req) {
			return 1.0
		}
	}
	return 0.0
}

// EducationComparison ranks the highest qualification on each side.
func EducationComparison(cv, jd []Qualification) Comparison {
	jdMax, ok := maxQualification(jd)
	if !ok {
		return Comparison{Status: StatusNoRequirement, Class: ClassNeutral}
	}
	cvMax, ok := maxQualification(cv)
	if !ok {
		return Comparison{Status: StatusBelow, Class: ClassBelow}
	}
	return compareRanks(cvMax, jdMax)
}

// ExperienceComparison ranks seniority on each side.
func ExperienceComparison(cv, jd Seniority) Comparison {
	jdRank, ok := seniorityRank[jd]
	if !ok {
		return Comparison{Status: StatusNoRequirement, Class: ClassNeutral}
	}
	cvRank, ok := seniorityRank[cv]
	if !ok {
		return Comparison{Status: StatusUnclear, Class: ClassNeutral}
	}
	return compareRanks(cvRank, jdRank)
}

func compareRanks(cv, jd int) Comparison {
	switch {
	case cv > jd:
		return Comparison{Status: StatusExceeds, Class: ClassExceeds}
	case cv == jd:
		return Comparison{Status: StatusMeets, Class: ClassMeets}
	default:
		return Comparison{Status: StatusBelow, Class: ClassBelow}
	}
}

func maxQualification(quals []Qualification) (int, bool) {
	best, found := -1, false
	for _, q := range quals {
		if rank, ok := qualificationRank[q]; ok && rank > best {
			best, found = rank, true
		}
	}
	return best, found
}

func containsQualification(quals []Qualification, q Qualification) bool {
	for _, v := range quals {
		if v == q {
			return true
		}
	}
	return false
}

func intersect(a, b map[string]struct{}) []string {
	out := make([]string, 0)
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func subtract(a, b map[string]struct{}) []string {
	out := make([]string, 0)
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
