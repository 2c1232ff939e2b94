package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/config"
)

// stubEmbedder maps text onto a tiny bag-of-words space.
type stubEmbedder struct {
	mu     sync.Mutex
	failOn map[string]bool
	calls  map[string]int
	texts  []string
}

var stubAxes = []string{"python", "java", "design"}

func newStubEmbedder(failOn ...string) *stubEmbedder {
	s := &stubEmbedder{failOn: map[string]bool{}, calls: map[string]int{}}
	for _, m := range failOn {
		s.failOn[m] = true
	}
	return s
}

func (s *stubEmbedder) Embed(_ context.Context, model, text string) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[model]++
	s.texts = append(s.texts, text)
	if s.failOn[model] {
		return nil, errors.New("model not found")
	}

	lower := strings.ToLower(text)
	v := make([]float32, len(stubAxes))
	for i, axis := range stubAxes {
		v[i] = float32(strings.Count(lower, axis))
	}
	return v, nil
}

func embeddingConfig() config.EmbeddingConfig {
	return config.EmbeddingConfig{
		APIKey:        "test",
		Model:         "full",
		FallbackModel: "small",
		ChunkSize:     6000,
		CacheSize:     4,
	}
}

func TestSelectSemanticProviderLadder(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("full model", func(t *testing.T) {
		e := newStubEmbedder()
		p := SelectSemanticProvider(ctx, e, embeddingConfig(), log)
		assert.True(t, p.Available())
		assert.Equal(t, 1, e.calls["full"])
		assert.Zero(t, e.calls["small"])
	})

	t.Run("falls back to small model", func(t *testing.T) {
		e := newStubEmbedder("full")
		p := SelectSemanticProvider(ctx, e, embeddingConfig(), log)
		require.True(t, p.Available())

		_, err := p.Similarity(ctx, "python", "python code")
		require.NoError(t, err)
		assert.Equal(t, 1, e.calls["full"], "full model is tried once and never retried")
		assert.Equal(t, 3, e.calls["small"])
	})

	t.Run("disabled when nothing answers", func(t *testing.T) {
		e := newStubEmbedder("full", "small")
		p := SelectSemanticProvider(ctx, e, embeddingConfig(), log)
		assert.False(t, p.Available())
		assert.IsType(t, analysis.Unavailable{}, p)
	})
}

func TestLoadSemanticProviderWithoutKey(t *testing.T) {
	cfg := embeddingConfig()
	cfg.APIKey = "  "

	p := LoadSemanticProvider(context.Background(), cfg, zap.NewNop())
	assert.False(t, p.Available())
}

func TestGeminiSemanticSimilarity(t *testing.T) {
	ctx := context.Background()
	e := newStubEmbedder()
	p := NewGeminiSemantic(e, "full", 6000, 4)

	score, err := p.Similarity(ctx, "Python and Java", "python, java")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)

	score, err = p.Similarity(ctx, "python", "design")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, score, 1e-9)
}

func TestGeminiSemanticCachesDocuments(t *testing.T) {
	ctx := context.Background()
	e := newStubEmbedder()
	p := NewGeminiSemantic(e, "full", 6000, 4).(*geminiSemantic)

	for _, cv := range []string{"python one", "python two", "python three"} {
		_, err := p.Similarity(ctx, cv, "python job")
		require.NoError(t, err)
	}

	assert.Equal(t, 4, e.calls["full"], "job description embedded once")
	require.NotNil(t, p.cache)
	assert.Equal(t, 4, p.cache.Len())
}

func TestGeminiSemanticAveragesChunks(t *testing.T) {
	ctx := context.Background()
	e := newStubEmbedder()
	p := NewGeminiSemantic(e, "full", 20, 0).(*geminiSemantic)

	v, err := p.documentVector(ctx, "python python python\n\njava java")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1, 0}, v)
	assert.Len(t, e.texts, 2)
	assert.Nil(t, p.cache, "zero capacity disables caching")
}

func TestGeminiSemanticPropagatesFailure(t *testing.T) {
	e := newStubEmbedder("full")
	p := NewGeminiSemantic(e, "full", 6000, 4)

	_, err := p.Similarity(context.Background(), "python", "java")
	assert.Error(t, err)
}

func TestGeminiSemanticEvictsLeastRecentDocument(t *testing.T) {
	ctx := context.Background()
	e := newStubEmbedder()
	p := NewGeminiSemantic(e, "full", 6000, 2).(*geminiSemantic)

	embed := func(text string) {
		t.Helper()
		_, err := p.documentVector(ctx, text)
		require.NoError(t, err)
	}

	embed("python a")
	embed("python b")
	embed("python a")
	assert.Equal(t, 2, e.calls["full"], "recent document served from cache")

	embed("python c")
	embed("python a")
	assert.Equal(t, 3, e.calls["full"], "a stays cached after b is evicted")

	embed("python b")
	assert.Equal(t, 4, e.calls["full"], "b was evicted")
	assert.Equal(t, 2, p.cache.Len())
}
