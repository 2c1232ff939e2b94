package analysis

// Seniority is the experience tier detected in a document.
type Seniority string

const (
	SeniorityJunior       Seniority = "Junior"
	SeniorityMid          Seniority = "Mid-Level"
	SenioritySenior       Seniority = "Senior"
	SeniorityNotSpecified Seniority = "Not Specified"
	// SeniorityUnknown only appears in the empty-input result.
	SeniorityUnknown Seniority = "Unknown"
)

// Qualification is an education label.
type Qualification string

const (
	QualificationPhD          Qualification = "PhD"
	QualificationMasters      Qualification = "Master's"
	QualificationBachelors    Qualification = "Bachelor's"
	QualificationDiploma      Qualification = "Diploma"
	QualificationNotSpecified Qualification = "Not Specified"
	QualificationNotDetected  Qualification = "Not Detected"
)

// DocumentType is the outcome of DetectDocumentType.
type DocumentType string

const (
	DocumentCV      DocumentType = "CV"
	DocumentJD      DocumentType = "JD"
	DocumentUnknown DocumentType = "UNKNOWN"
)

// ClassificationResult is the verdict of a classifier for one role.
type ClassificationResult struct {
	IsValid    bool    `json:"is_valid"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// SkillSet maps a category to the phrases found in a text.
type SkillSet map[string]map[string]struct{}

// Flatten returns the union of every category.
func (s SkillSet) Flatten() map[string]struct{} {
	out := make(map[string]struct{})
	for _, skills := range s {
		for skill := range skills {
			out[skill] = struct{}{}
		}
	}
	return out
}

// Profile is the structured view of a single document.
type Profile struct {
	Skills    SkillSet
	Seniority Seniority
	Education []Qualification
}

// SimilarityPair holds the two independent similarity signals, both in [0,1].
type SimilarityPair struct {
	Lexical  float64
	Semantic float64
	// SemanticAvailable is false when the embedding capability was missing
	// or failed, in which case Semantic is 0.
	SemanticAvailable bool
}

// LevelPair reports a value for the résumé and the job description.
type LevelPair struct {
	CV Seniority `json:"cv"`
	JD Seniority `json:"jd"`
}

// EducationPair reports qualifications for both documents.
type EducationPair struct {
	CV []Qualification `json:"cv"`
	JD []Qualification `json:"jd"`
}

// Comparison is a UI-facing judgment with a presentation class.
type Comparison struct {
	Status string `json:"status"`
	Class  string `json:"class"`
}

// QualificationComparison groups the education and experience judgments.
type QualificationComparison struct {
	Education  Comparison `json:"education"`
	Experience Comparison `json:"experience"`
}

// SkillsBreakdown lists skills by overlap. Slices are sorted.
type SkillsBreakdown struct {
	Matched       []string            `json:"matched"`
	Missing       []string            `json:"missing"`
	Extra         []string            `json:"extra"`
	CVCategorized map[string][]string `json:"cv_categorized"`
	JDCategorized map[string][]string `json:"jd_categorized"`
}

// MatchResult is the only output of Engine.Score.
type MatchResult struct {
	MatchPercentage         float64                 `json:"match_percentage"`
	ConfidenceScore         float64                 `json:"confidence_score"`
	SemanticScore           float64                 `json:"semantic_score"`
	TFIDFScore              float64                 `json:"tfidf_score"`
	SkillMatchScore         float64                 `json:"skill_match_score"`
	SemanticAvailable       bool                    `json:"semantic_available"`
	ExperienceLevel         LevelPair               `json:"experience_level"`
	Education               EducationPair           `json:"education"`
	QualificationComparison QualificationComparison `json:"qualification_comparison"`
	KeyStrengths            []string                `json:"key_strengths"`
	AreasForImprovement     []string                `json:"areas_for_improvement"`
	Skills                  SkillsBreakdown         `json:"skills"`
	Details                 string                  `json:"details,omitempty"`
}
