package chunker

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-corpus/normalize"
)

// fieldsTokenizer counts whitespace-separated words, which keeps budgets in
// these tests easy to reason about.
type fieldsTokenizer struct{}

func (fieldsTokenizer) Words(s string) []string { return strings.Fields(s) }

func newChunker(t *testing.T, opts ...Option) *Chunker {
	t.Helper()
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

func TestNew_InvalidChunkSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := New(WithMaxWords(n))
		assert.ErrorIs(t, err, ErrInvalidChunkSize, "max words %d", n)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := newChunker(t)
	assert.Equal(t, DefaultMaxWords, c.MaxWords())
}

func TestAdmissible(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"The cat sat.", true},
		{"Why?", true},
		{"Stop!", true},
		{"  Padded.  ", false},
		{" The cat.", false},
		{"The cat. ", false},
		{"Бүгін ауа жақсы.", true},
		{"it jumped.", false},
		{"CHAPTER ONE", false},
		{"No terminal", false},
		{`"Quoted," he said.`, false},
		{"Ends with quote.\"", false},
		{"1984 was a year.", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Admissible(tc.in), "Admissible(%q)", tc.in)
	}
}

func TestChunk_DropsInadmissible(t *testing.T) {
	c := newChunker(t, WithMaxWords(10))

	chunks, stats := c.Chunk([]string{"The cat sat.", "it jumped."})
	require.Len(t, chunks, 1)
	assert.Equal(t, "The cat sat .", chunks[0].Text())
	assert.Equal(t, "The cat sat.", normalize.Text(chunks[0].Text()))
	assert.Equal(t, Stats{Sentences: 2, Admitted: 1, Words: 4, Chunks: 1}, stats)
}

func TestChunk_Budget(t *testing.T) {
	c := newChunker(t, WithMaxWords(5), WithTokenizer(fieldsTokenizer{}))

	chunks, stats := c.Chunk([]string{
		"One two.",         // 2
		"Three four five.", // 3 -> 5, fits exactly
		"Six.",             // 1 -> new chunk
		"Seven eight.",     // 2 -> 3
		"Nine ten eleven.", // 3 -> 6, new chunk
	})

	require.Len(t, chunks, 3)
	assert.Equal(t, "One two. Three four five.", chunks[0].Text())
	assert.Equal(t, "Six. Seven eight.", chunks[1].Text())
	assert.Equal(t, "Nine ten eleven.", chunks[2].Text())
	for i, ch := range chunks {
		assert.Equal(t, i, ch.Index)
	}
	assert.Equal(t, []int{2, 2, 1}, []int{chunks[0].Sentences, chunks[1].Sentences, chunks[2].Sentences})
	assert.Zero(t, stats.Oversized)
}

func TestChunk_OversizedSentenceStandsAlone(t *testing.T) {
	c := newChunker(t, WithMaxWords(3), WithTokenizer(fieldsTokenizer{}))

	chunks, stats := c.Chunk([]string{
		"Short one.",
		"This sentence is far too long.",
		"Tail.",
	})

	require.Len(t, chunks, 3)
	assert.Equal(t, "Short one.", chunks[0].Text())
	assert.Equal(t, "This sentence is far too long.", chunks[1].Text())
	assert.Equal(t, 1, chunks[1].Sentences)
	assert.Equal(t, "Tail.", chunks[2].Text())
	assert.Equal(t, 1, stats.Oversized)
}

func TestChunk_NoAdmissibleSentences(t *testing.T) {
	c := newChunker(t)

	chunks, stats := c.Chunk([]string{"lowercase start.", "NO END"})
	assert.Empty(t, chunks)
	assert.Equal(t, 0, stats.Chunks)

	chunks, _ = c.Chunk(nil)
	assert.Empty(t, chunks)
}

func TestChunk_Properties(t *testing.T) {
	sentences := []string{
		"Alpha beta gamma.", "delta epsilon.", "Zeta eta theta iota kappa lambda mu.",
		"Nu.", "Xi omicron pi!", "Rho sigma tau upsilon phi chi psi omega alpha beta.",
		"Is this a question?", "HEADER", "One more sentence here.", "Last.",
	}

	for _, budget := range []int{1, 2, 3, 5, 8, 13, 100} {
		c := newChunker(t, WithMaxWords(budget), WithTokenizer(fieldsTokenizer{}))
		chunks, stats := c.Chunk(sentences)

		var want int
		for _, s := range sentences {
			if Admissible(s) {
				want += len(strings.Fields(s))
			}
		}

		var got int
		for _, ch := range chunks {
			got += ch.Len()
			assert.NotZero(t, ch.Len(), "budget %d: empty chunk", budget)
			if ch.Sentences > 1 {
				assert.LessOrEqual(t, ch.Len(), budget, "budget %d: chunk %d over budget", budget, ch.Index)
			}
		}
		assert.Equal(t, want, got, "budget %d: words lost or duplicated", budget)
		assert.Equal(t, want, stats.Words)
		assert.Equal(t, len(chunks), stats.Chunks)
	}
}

func TestChunk_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := newChunker(t, WithLogger(logger))

	c.Chunk([]string{"The cat sat."})
	assert.Contains(t, buf.String(), "chunked sentences")
	assert.Contains(t, buf.String(), "admitted=1")
}
