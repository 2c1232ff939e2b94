package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/config"
)

const healthCheckText = "Senior software engineer with Python and SQL experience."

// Embedder produces a dense vector for a piece of text.
type Embedder interface {
	Embed(ctx context.Context, model, text string) ([]float32, error)
}

type geminiEmbedder struct {
	client *genai.Client
}

func NewGeminiEmbedder(ctx context.Context, apiKey string) (Embedder, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiEmbedder{client: client}, nil
}

// Embed implements Embedder.
func (g *geminiEmbedder) Embed(ctx context.Context, model, text string) ([]float32, error) {
	result, err := g.client.Models.EmbedContent(ctx, model, genai.Text(text), &genai.EmbedContentConfig{
		TaskType: "SEMANTIC_SIMILARITY",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

type geminiSemantic struct {
	embedder  Embedder
	model     string
	chunker   TextChunker
	chunkSize int
	cache     *lru.Cache[string, []float64]
}

// NewGeminiSemantic exposes an embedding model as a semantic similarity
// capability. Documents longer than chunkSize runes are embedded in chunks
// and averaged.
func NewGeminiSemantic(embedder Embedder, model string, chunkSize, cacheSize int) analysis.SemanticProvider {
	return &geminiSemantic{
		embedder:  embedder,
		model:     model,
		chunker:   NewTextChunker(),
		chunkSize: chunkSize,
		cache:     newVectorCache(cacheSize),
	}
}

func (g *geminiSemantic) Available() bool { return true }

func (g *geminiSemantic) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := g.documentVector(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := g.documentVector(ctx, b)
	if err != nil {
		return 0, err
	}
	return analysis.CosineSimilarity(va, vb), nil
}

func (g *geminiSemantic) documentVector(ctx context.Context, text string) ([]float64, error) {
	key := cacheKey(g.model, text)
	if g.cache != nil {
		if v, ok := g.cache.Get(key); ok {
			return v, nil
		}
	}

	chunks := g.chunker.ChunkText(text, g.chunkSize)
	if len(chunks) == 0 {
		return nil, nil
	}

	var mean []float64
	for i, chunk := range chunks {
		values, err := g.embedder.Embed(ctx, g.model, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunk %d/%d: %w", i+1, len(chunks), err)
		}
		if mean == nil {
			mean = make([]float64, len(values))
		}
		if len(values) != len(mean) {
			return nil, fmt.Errorf("embedding dimension changed from %d to %d", len(mean), len(values))
		}
		for j, v := range values {
			mean[j] += float64(v)
		}
	}
	for j := range mean {
		mean[j] /= float64(len(chunks))
	}

	if g.cache != nil {
		g.cache.Add(key, mean)
	}
	return mean, nil
}

// LoadSemanticProvider resolves the semantic capability once at startup:
// the full model, then the small model, then disabled.
func LoadSemanticProvider(ctx context.Context, cfg config.EmbeddingConfig, logger *zap.Logger) analysis.SemanticProvider {
	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Info("semantic similarity disabled: no API key configured")
		return analysis.Unavailable{}
	}

	embedder, err := NewGeminiEmbedder(ctx, cfg.APIKey)
	if err != nil {
		logger.Warn("semantic similarity disabled", zap.Error(err))
		return analysis.Unavailable{}
	}

	return SelectSemanticProvider(ctx, embedder, cfg, logger)
}

// SelectSemanticProvider tries each configured model in order and returns
// the first that answers.
func SelectSemanticProvider(ctx context.Context, embedder Embedder, cfg config.EmbeddingConfig, logger *zap.Logger) analysis.SemanticProvider {
	for _, model := range []string{cfg.Model, cfg.FallbackModel} {
		if model == "" {
			continue
		}
		if _, err := embedder.Embed(ctx, model, healthCheckText); err != nil {
			logger.Warn("embedding model unavailable", zap.String("model", model), zap.Error(err))
			continue
		}
		logger.Info("semantic similarity enabled", zap.String("model", model))
		return NewGeminiSemantic(embedder, model, cfg.ChunkSize, cfg.CacheSize)
	}

	logger.Warn("semantic similarity disabled: no embedding model answered")
	return analysis.Unavailable{}
}

func cacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// newVectorCache returns nil when caching is disabled.
func newVectorCache(size int) *lru.Cache[string, []float64] {
	if size <= 0 {
		return nil
	}
	cache, err := lru.New[string, []float64](size)
	if err != nil {
		return nil
	}
	return cache
}
