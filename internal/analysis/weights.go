package analysis

// Weights is one complete weighting of the five sub-scores. Each set sums to 1.
type Weights struct {
	Semantic   float64
	Lexical    float64
	Skills     float64
	Experience float64
	Education  float64
}

var (
	// DefaultWeights applies when both similarity signals are usable.
	DefaultWeights = Weights{Semantic: 0.30, Lexical: 0.20, Skills: 0.30, Experience: 0.10, Education: 0.10}

	// LowSemanticWeights moves the semantic share onto lexical and skill
	// evidence.
	LowSemanticWeights = Weights{Semantic: 0.0, Lexical: 0.35, Skills: 0.45, Experience: 0.10, Education: 0.10}
)

const (
	lowSemanticCutoff = 0.10
	strongSkillRatio  = 0.30
)

// UseLowSemanticWeights reports whether the embedding signal is weak while
// skill overlap is strong.
func UseLowSemanticWeights(semantic, skillRatio float64) bool {
	return semantic < lowSemanticCutoff && skillRatio > strongSkillRatio
}

// SelectWeights returns exactly one of the two weight sets.
func SelectWeights(semantic, skillRatio float64) Weights {
	if UseLowSemanticWeights(semantic, skillRatio) {
		return LowSemanticWeights
	}
	return DefaultWeights
}

// SubScores are the inputs of the weighted sum, each in [0,1].
type SubScores struct {
	Semantic   float64
	Lexical    float64
	Skills     float64
	Experience float64
	Education  float64
}

// Apply returns the weighted sum of s.
func (w Weights) Apply(s SubScores) float64 {
	return s.Semantic*w.Semantic +
		s.Lexical*w.Lexical +
		s.Skills*w.Skills +
		s.Experience*w.Experience +
		s.Education*w.Education
}
