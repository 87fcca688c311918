package chunker

import (
	"log/slog"

	"github.com/jamesainslie/go-corpus/segment"
)

// Option configures a Chunker.
type Option func(*config)

type config struct {
	maxWords  int
	tokenizer segment.WordTokenizer
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		maxWords:  DefaultMaxWords,
		tokenizer: segment.UAX29{},
		logger:    slog.Default(),
	}
}

// WithMaxWords sets the word budget per chunk (default: 200).
// Values below one are rejected by New.
func WithMaxWords(n int) Option {
	return func(c *config) {
		c.maxWords = n
	}
}

// WithTokenizer sets the word tokenizer (default: segment.UAX29).
func WithTokenizer(t segment.WordTokenizer) Option {
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
