package corpus

import (
	"log/slog"

	"github.com/jamesainslie/go-corpus/chunker"
	"github.com/jamesainslie/go-corpus/segment"
)

// Option configures a Preparer.
type Option func(*config)

type config struct {
	maxChunkSize int
	splitter     segment.SentenceSplitter
	tokenizer    segment.WordTokenizer
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		maxChunkSize: chunker.DefaultMaxWords,
		splitter:     segment.Rules{},
		tokenizer:    segment.UAX29{},
		logger:       slog.Default(),
	}
}

// WithMaxChunkSize sets the word budget per chunk (default: 200).
func WithMaxChunkSize(n int) Option {
	return func(c *config) {
		c.maxChunkSize = n
	}
}

// WithSplitter sets the sentence splitter (default: segment.Rules).
func WithSplitter(s segment.SentenceSplitter) Option {
	return func(c *config) {
		if s != nil {
			c.splitter = s
		}
	}
}

// WithWordTokenizer sets the word tokenizer used for budgeting
// (default: segment.UAX29).
func WithWordTokenizer(t segment.WordTokenizer) Option {
	return func(c *config) {
		if t != nil {
			c.tokenizer = t
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
