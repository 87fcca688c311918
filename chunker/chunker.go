// Package chunker groups sentences into word-budgeted chunks.
//
// Only admissible sentences are kept: a sentence must start with an
// uppercase letter and end with '.', '!' or '?'. Everything else is treated
// as a heading or an extraction artifact and dropped.
//
// A chunk never splits a sentence. A sentence longer than the budget is
// emitted alone, so the budget holds for every chunk with more than one
// sentence.
package chunker

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-corpus/segment"
)

// DefaultMaxWords is the word budget used when none is configured.
const DefaultMaxWords = 200

// Chunk is an ordered run of word tokens from consecutive admissible
// sentences.
type Chunk struct {
	Index     int
	Words     []string
	Sentences int
}

// Len returns the number of words in the chunk.
func (c Chunk) Len() int { return len(c.Words) }

// Text joins the chunk's words with single spaces. Punctuation tokens are
// left detached; the normalizer reattaches them.
func (c Chunk) Text() string { return strings.Join(c.Words, " ") }

// Stats describes one Chunk call.
type Stats struct {
	Sentences int // sentences seen
	Admitted  int // sentences that passed the admissibility filter
	Words     int // words across admitted sentences
	Chunks    int
	Oversized int // chunks holding one sentence longer than the budget
}

// Chunker accumulates sentences into chunks. It holds no state between
// calls and is safe for concurrent use.
type Chunker struct {
	maxWords  int
	tokenizer segment.WordTokenizer
	logger    *slog.Logger
}

// New returns a Chunker. It fails with ErrInvalidChunkSize when the word
// budget is not positive.
func New(opts ...Option) (*Chunker, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxWords <= 0 {
		return nil, ErrInvalidChunkSize
	}
	return &Chunker{
		maxWords:  cfg.maxWords,
		tokenizer: cfg.tokenizer,
		logger:    cfg.logger,
	}, nil
}

// MaxWords returns the configured word budget.
func (c *Chunker) MaxWords() int { return c.maxWords }

// Chunk groups sentences into chunks in source order. No admissible
// sentence means no chunks.
func (c *Chunker) Chunk(sentences []string) ([]Chunk, Stats) {
	var (
		chunks []Chunk
		stats  = Stats{Sentences: len(sentences)}
		cur    Chunk
	)

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		if cur.Sentences == 1 && cur.Len() > c.maxWords {
			stats.Oversized++
		}
		cur.Index = len(chunks)
		chunks = append(chunks, cur)
		cur = Chunk{}
	}

	for _, s := range sentences {
		if !Admissible(s) {
			continue
		}
		words := c.tokenizer.Words(s)
		if len(words) == 0 {
			continue
		}
		stats.Admitted++
		stats.Words += len(words)

		if cur.Len()+len(words) > c.maxWords {
			flush()
		}
		cur.Words = append(cur.Words, words...)
		cur.Sentences++
	}
	flush()

	stats.Chunks = len(chunks)
	c.logger.Debug("chunked sentences",
		"sentences", stats.Sentences,
		"admitted", stats.Admitted,
		"chunks", stats.Chunks,
		"oversized", stats.Oversized,
	)
	return chunks, stats
}

// Admissible reports whether the first character of s is an uppercase
// letter and the last is '.', '!' or '?'. Whitespace counts as a character.
func Admissible(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return false
	}
	switch last, _ := utf8.DecodeLastRuneInString(s); last {
	case '.', '!', '?':
		return true
	}
	return false
}
