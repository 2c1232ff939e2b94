package analysis

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const emptyInputDetails = "Could not read text from files."

// Engine scores a résumé against a job description. It holds no per-call
// state and is safe for concurrent use once built.
type Engine struct {
	classifier *Classifier
	extractor  *Extractor
	similarity *Similarity
	logger     *zap.Logger
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	lexicon  *Lexicon
	semantic SemanticProvider
	logger   *zap.Logger
}

// WithLexicon replaces the built-in vocabulary.
func WithLexicon(lex *Lexicon) Option {
	return func(o *engineOptions) { o.lexicon = lex }
}

// WithSemantic plugs in an embedding capability.
func WithSemantic(p SemanticProvider) Option {
	return func(o *engineOptions) { o.semantic = p }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *engineOptions) { o.logger = l }
}

// NewEngine builds an engine. Without options it uses the default lexicon
// and runs with the semantic signal disabled.
func NewEngine(opts ...Option) *Engine {
	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lexicon == nil {
		o.lexicon = DefaultLexicon()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &Engine{
		classifier: NewClassifier(o.lexicon),
		extractor:  NewExtractor(o.lexicon),
		similarity: NewSimilarity(o.lexicon, o.semantic, o.logger),
		logger:     o.logger,
	}
}

// SemanticAvailable reports whether a live embedding capability is wired.
func (e *Engine) SemanticAvailable() bool {
	return e.similarity.semantic.Available()
}

// ClassifyCV scores text as a résumé.
func (e *Engine) ClassifyCV(text string) ClassificationResult {
	return e.classifier.ClassifyCV(text)
}

// ClassifyJD scores text as a job description.
func (e *Engine) ClassifyJD(text string) ClassificationResult {
	return e.classifier.ClassifyJD(text)
}

// DetectDocumentType guesses which role text plays.
func (e *Engine) DetectDocumentType(text string) DocumentType {
	return e.classifier.DetectDocumentType(text)
}

// Score compares a résumé with a job description. It never fails: empty
// input yields the zero-valued result with Details set.
func (e *Engine) Score(ctx context.Context, cvText, jdText string) *MatchResult {
	if strings.TrimSpace(cvText) == "" || strings.TrimSpace(jdText) == "" {
		return EmptyResult()
	}

	cv := e.extractor.Extract(cvText)
	jd := e.extractor.Extract(jdText)
	pair := e.similarity.Compare(ctx, cvText, jdText)

	a := Aggregate(cv, jd, pair)

	e.logger.Debug("match scored",
		zap.Float64("semantic", pair.Semantic),
		zap.Float64("lexical", pair.Lexical),
		zap.Float64("skill_ratio", a.SkillRatio),
		zap.Bool("low_semantic_weights", a.Weights == LowSemanticWeights),
		zap.Float64("weighted", a.Weighted),
	)

	return Build(a)
}

// Build renders an assessment as a MatchResult.
func Build(a Assessment) *MatchResult {
	strengths, improvements := Insights(a)

	return &MatchResult{
		MatchPercentage:   round2(a.Match * 100),
		ConfidenceScore:   round2(a.Confidence * 100),
		SemanticScore:     round2(a.Pair.Semantic * 100),
		TFIDFScore:        round2(a.Pair.Lexical * 100),
		SkillMatchScore:   round2(a.SkillRatio * 100),
		SemanticAvailable: a.Pair.SemanticAvailable,
		ExperienceLevel:   LevelPair{CV: a.CV.Seniority, JD: a.JD.Seniority},
		Education:         EducationPair{CV: a.CV.Education, JD: a.JD.Education},
		QualificationComparison: QualificationComparison{
			Education:  EducationComparison(a.CV.Education, a.JD.Education),
			Experience: ExperienceComparison(a.CV.Seniority, a.JD.Seniority),
		},
		KeyStrengths:        strengths,
		AreasForImprovement: improvements,
		Skills: SkillsBreakdown{
			Matched:       a.Matched,
			Missing:       a.Missing,
			Extra:         a.Extra,
			CVCategorized: categorized(a.CV.Skills),
			JDCategorized: categorized(a.JD.Skills),
		},
	}
}

// EmptyResult is returned whenever either document has no text.
func EmptyResult() *MatchResult {
	unclear := Comparison{Status: StatusUnclear, Class: ClassNeutral}
	return &MatchResult{
		ExperienceLevel: LevelPair{CV: SeniorityUnknown, JD: SeniorityUnknown},
		Education: EducationPair{
			CV: []Qualification{QualificationNotDetected},
			JD: []Qualification{QualificationNotSpecified},
		},
		QualificationComparison: QualificationComparison{Education: unclear, Experience: unclear},
		KeyStrengths:            []string{},
		AreasForImprovement:     []string{},
		Skills: SkillsBreakdown{
			Matched:       []string{},
			Missing:       []string{},
			Extra:         []string{},
			CVCategorized: map[string][]string{},
			JDCategorized: map[string][]string{},
		},
		Details: emptyInputDetails,
	}
}

func categorized(s SkillSet) map[string][]string {
	out := make(map[string][]string, len(s))
	for category, skills := range s {
		list := make([]string, 0, len(skills))
		for skill := range skills {
			list = append(list, skill)
		}
		sort.Strings(list)
		out[category] = list
	}
	return out
}
