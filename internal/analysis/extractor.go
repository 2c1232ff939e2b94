package analysis

import "strings"

// Extractor derives skills, seniority and education from raw text.
//
// Skill phrases are matched as plain substrings of the normalized text. That
// means "java" is found inside "javascript" and "c++" never survives
// punctuation stripping; both are known limitations of the scoring model.
type Extractor struct {
	lex *Lexicon
}

// NewExtractor builds an extractor over the given lexicon.
func NewExtractor(lex *Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract builds a full profile for one document.
func (e *Extractor) Extract(text string) Profile {
	return Profile{
		Skills:    e.ExtractSkills(text),
		Seniority: e.DetectSeniority(text),
		Education: e.DetectEducation(text),
	}
}

// ExtractSkills returns every category of the lexicon with the phrases found
// in text. Categories with no hits are present and empty.
func (e *Extractor) ExtractSkills(text string) SkillSet {
	normalized := Normalize(text)

	found := make(SkillSet, len(e.lex.SkillCategories))
	for category, skills := range e.lex.SkillCategories {
		hits := make(map[string]struct{})
		for _, skill := range skills {
			if strings.Contains(normalized, skill) {
				hits[skill] = struct{}{}
			}
		}
		found[category] = hits
	}
	return found
}

// DetectSeniority scans Senior terms first, then Mid, then Junior, so a text
// mentioning both "senior" and "junior" reports Senior.
func (e *Extractor) DetectSeniority(text string) Seniority {
	lower := strings.ToLower(text)

	tiers := []struct {
		level Seniority
		terms []string
	}{
		{SenioritySenior, e.lex.SeniorTerms},
		{SeniorityMid, e.lex.MidTerms},
		{SeniorityJunior, e.lex.JuniorTerms},
	}
	for _, tier := range tiers {
		if countContained(lower, tier.terms) > 0 {
			return tier.level
		}
	}
	return SeniorityNotSpecified
}

// DetectEducation reports every qualification found, in lexicon order, or
// [Not Specified] when none is found.
func (e *Extractor) DetectEducation(text string) []Qualification {
	lower := strings.ToLower(text)

	var quals []Qualification
	for _, group := range e.lex.Education {
		if countContained(lower, group.Terms) > 0 {
			quals = append(quals, group.Label)
		}
	}
	if len(quals) == 0 {
		return []Qualification{QualificationNotSpecified}
	}
	return quals
}
