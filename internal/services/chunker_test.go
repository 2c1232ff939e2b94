package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestChunkTextShortInput(t *testing.T) {
	c := NewTextChunker()

	assert.Equal(t, []string{"one\n\ntwo"}, c.ChunkText("one\n\n\n\ntwo", 100))
	assert.Empty(t, c.ChunkText("   ", 100))
}

func TestChunkTextPacksParagraphs(t *testing.T) {
	c := NewTextChunker()

	text := strings.Join([]string{"aaaa", "bbbb", "cccc"}, "\n\n")
	assert.Equal(t, []string{"aaaa\n\nbbbb", "cccc"}, c.ChunkText(text, 10))
}

func TestChunkTextSplitsLongParagraphs(t *testing.T) {
	c := NewTextChunker()

	text := "First sentence here. Second one! Third?"
	assert.Equal(t, []string{"First sentence here.", "Second one! Third?"}, c.ChunkText(text, 20))
}

func TestChunkTextRespectsLimit(t *testing.T) {
	c := NewTextChunker()

	text := strings.Repeat("é", 95) + "\n\n" + strings.Repeat("word ", 40)
	chunks := c.ChunkText(text, 30)
	assert.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 30)
	}
	assert.Equal(t, strings.Repeat("é", 30), chunks[0])
}
