package analysis

import (
	"fmt"
	"regexp"
	"sort"
)

// Skill categories reported in MatchResult.Skills.
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryTools     = "tools"
)

// Lexicon holds every vocabulary the engine reads. It is built once and
// treated as read-only afterwards, so a single value can be shared by
// concurrent callers.
type Lexicon struct {
	// SkillCategories maps a category name to its skill phrases.
	SkillCategories map[string][]string

	CVKeywords []string
	JDKeywords []string

	// Section checklists scored by the classifier, 10 points each.
	CVSections []string
	JDSections []string

	ContactPatterns []*regexp.Regexp
	CompanyPatterns []*regexp.Regexp

	// Seniority terms, scanned Senior → Mid → Junior.
	SeniorTerms []string
	MidTerms    []string
	JuniorTerms []string

	// Education groups, checked independently in this order.
	Education []QualificationTerms

	StopWords map[string]struct{}
}

// QualificationTerms ties a qualification label to the keywords that signal it.
type QualificationTerms struct {
	Label Qualification
	Terms []string
}

// Categories returns the skill category names in a stable order.
func (l *Lexicon) Categories() []string {
	names := make([]string, 0, len(l.SkillCategories))
	for name := range l.SkillCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsStopWord reports whether the token is ignored by lexical similarity.
func (l *Lexicon) IsStopWord(token string) bool {
	_, ok := l.StopWords[token]
	return ok
}

// CompilePatterns compiles case-insensitive regular expressions.
func CompilePatterns(exprs ...string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q: %w", expr, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// DefaultLexicon returns the built-in vocabulary. Each call returns a fresh
// value; callers that want alternate vocabularies can copy and edit it.
func DefaultLexicon() *Lexicon {
	stop := make(map[string]struct{}, len(englishStopWords))
	for _, w := range englishStopWords {
		stop[w] = struct{}{}
	}

	categories := make(map[string][]string, len(defaultSkills))
	for name, skills := range defaultSkills {
		categories[name] = append([]string(nil), skills...)
	}

	return &Lexicon{
		SkillCategories: categories,
		CVKeywords:      append([]string(nil), defaultCVKeywords...),
		JDKeywords:      append([]string(nil), defaultJDKeywords...),
		CVSections:      []string{"experience", "education", "skills"},
		JDSections:      []string{"responsibilities", "requirements", "qualifications"},
		ContactPatterns: mustCompile(defaultContactPatterns...),
		CompanyPatterns: mustCompile(defaultCompanyPatterns...),
		SeniorTerms:     []string{"senior", "lead", "principal", "manager", "architect", "10+", "7+"},
		MidTerms:        []string{"mid", "intermediate", "3+", "4+", "5+"},
		JuniorTerms:     []string{"junior", "associate", "intern", "trainee", "entry", "0-2", "1+"},
		Education: []QualificationTerms{
			{Label: QualificationPhD, Terms: []string{"phd", "doctorate", "ph.d"}},
			{Label: QualificationMasters, Terms: []string{"master", "m.s", "mba", "m.tech", "post graduate"}},
			{Label: QualificationBachelors, Terms: []string{"bachelor", "b.s", "b.tech", "b.e", "undergraduate", "bsc"}},
			{Label: QualificationDiploma, Terms: []string{"diploma", "associate degree"}},
		},
		StopWords: stop,
	}
}

func mustCompile(exprs ...string) []*regexp.Regexp {
	patterns, err := CompilePatterns(exprs...)
	if err != nil {
		panic(err)
	}
	return patterns
}
