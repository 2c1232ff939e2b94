package analysis

import (
	"context"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MaxSemanticChars bounds the text handed to the embedding capability.
const MaxSemanticChars = 100000

// tokenPattern keeps tokens of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// SemanticProvider is the embedding capability. Implementations compare two
// whole documents and return a cosine similarity.
type SemanticProvider interface {
	Available() bool
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Unavailable is the degraded-mode provider used when no model could be loaded.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Similarity(context.Context, string, string) (float64, error) {
	return 0, nil
}

// Similarity computes the lexical and semantic signals for a document pair.
type Similarity struct {
	lex      *Lexicon
	semantic SemanticProvider
	logger   *zap.Logger
}

// NewSimilarity wires the lexical scorer to an optional semantic provider.
// A nil provider runs in degraded mode.
func NewSimilarity(lex *Lexicon, semantic SemanticProvider, logger *zap.Logger) *Similarity {
	if semantic == nil {
		semantic = Unavailable{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Similarity{lex: lex, semantic: semantic, logger: logger}
}

// Compare returns both signals for a pair.
func (s *Similarity) Compare(ctx context.Context, a, b string) SimilarityPair {
	semantic, ok := s.Semantic(ctx, a, b)
	return SimilarityPair{
		Lexical:           s.Lexical(a, b),
		Semantic:          semantic,
		SemanticAvailable: ok,
	}
}

// Lexical is the TF-IDF cosine of a and b with the vocabulary and document
// frequencies fitted on the two texts. Returns 0 when nothing survives
// tokenization and stop-word removal.
func (s *Similarity) Lexical(a, b string) float64 {
	docs := [2]map[string]float64{s.termCounts(a), s.termCounts(b)}
	if len(docs[0]) == 0 && len(docs[1]) == 0 {
		return 0
	}

	// Smoothed idf: ln((1+n)/(1+df)) + 1 with n = 2.
	idf := func(term string) float64 {
		df := 0
		for _, d := range docs {
			if _, ok := d[term]; ok {
				df++
			}
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	var vecs [2]map[string]float64
	for i, d := range docs {
		v := make(map[string]float64, len(d))
		for term, tf := range d {
			v[term] = tf * idf(term)
		}
		vecs[i] = v
	}

	var dot, normA, normB float64
	for term, wa := range vecs[0] {
		normA += wa * wa
		if wb, ok := vecs[1][term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range vecs[1] {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return clamp(dot/(math.Sqrt(normA)*math.Sqrt(normB)), 0, 1)
}

// Semantic delegates to the embedding capability. The second return is false
// when the capability is unavailable or failed; the score is then 0.
func (s *Similarity) Semantic(ctx context.Context, a, b string) (float64, bool) {
	if !s.semantic.Available() {
		return 0, false
	}

	score, err := s.semantic.Similarity(ctx, truncateRunes(a, MaxSemanticChars), truncateRunes(b, MaxSemanticChars))
	if err != nil {
		s.logger.Warn("semantic similarity unavailable, using 0", zap.Error(err))
		return 0, false
	}
	if math.IsNaN(score) {
		return 0, false
	}
	return clamp(score, 0, 1), true
}

func (s *Similarity) termCounts(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if s.lex.IsStopWord(tok) {
			continue
		}
		counts[tok]++
	}
	return counts
}

// CosineSimilarity returns the cosine of two equal-length vectors, or 0 when
// either is zero or the lengths differ.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
