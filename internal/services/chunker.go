package services

import (
	"strings"
	"unicode/utf8"
)

const defaultChunkSize = 6000

// TextChunker splits long documents into pieces small enough to embed.
type TextChunker interface {
	ChunkText(text string, maxChunkSize int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText packs paragraphs into chunks of at most maxChunkSize runes.
// Paragraphs that are too long are split into sentences, and sentences that
// are still too long are cut at the rune limit.
func (tc *textChunker) ChunkText(text string, maxChunkSize int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = defaultChunkSize
	}

	p := packer{limit: maxChunkSize}
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if utf8.RuneCountInString(para) <= maxChunkSize {
			p.add(para, "\n\n")
			continue
		}

		for _, sentence := range splitIntoSentences(para) {
			for _, piece := range splitRunes(sentence, maxChunkSize) {
				p.add(piece, " ")
			}
		}
	}

	return p.flush()
}

type packer struct {
	limit   int
	chunks  []string
	current strings.Builder
	runes   int
}

func (p *packer) add(piece, sep string) {
	n := utf8.RuneCountInString(piece)
	if p.runes > 0 && p.runes+len(sep)+n > p.limit {
		p.chunks = append(p.chunks, p.current.String())
		p.current.Reset()
		p.runes = 0
	}
	if p.runes > 0 {
		p.current.WriteString(sep)
		p.runes += len(sep)
	}
	p.current.WriteString(piece)
	p.runes += n
}

func (p *packer) flush() []string {
	if p.runes > 0 {
		p.chunks = append(p.chunks, p.current.String())
	}
	return p.chunks
}

func splitIntoSentences(text string) []string {
	var result []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				result = append(result, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		result = append(result, s)
	}
	return result
}

func splitRunes(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var out []string
	for len(runes) > limit {
		out = append(out, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}
