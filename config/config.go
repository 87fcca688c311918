// Package config loads corpusprep settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/jamesainslie/go-corpus/chunker"
	"github.com/jamesainslie/go-corpus/mistake"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Splitter kinds.
const (
	SplitterRules = "rules"
	SplitterSaT   = "sat"
)

// Config is the full set of pipeline settings.
type Config struct {
	MaxChunkSize     int       `toml:"max_chunk_size"`
	ErrorProbability float64   `toml:"error_probability"`
	Palette          string    `toml:"palette"`
	Mistakers        []string  `toml:"mistakers"`
	Seed             uint64    `toml:"seed"`
	Workers          int       `toml:"workers"`
	Segmenter        Segmenter `toml:"segmenter"`
}

// Segmenter selects and configures the sentence splitter.
type Segmenter struct {
	Kind      string  `toml:"kind"`
	Model     string  `toml:"model"`
	Tokenizer string  `toml:"tokenizer"`
	Threshold float64 `toml:"threshold"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		MaxChunkSize:     chunker.DefaultMaxWords,
		ErrorProbability: mistake.DefaultProbability,
		Palette:          mistake.KazakhCyrillic,
		Mistakers:        []string{"typo"},
		Seed:             42,
		Workers:          4,
		Segmenter: Segmenter{
			Kind:      SplitterRules,
			Threshold: 0.025,
		},
	}
}

// Load reads path over the defaults and validates the result. Unknown keys
// are an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.MaxChunkSize <= 0 {
		invalid("max_chunk_size must be positive, got %d", c.MaxChunkSize)
	}
	if c.Workers < 1 {
		invalid("workers must be at least 1, got %d", c.Workers)
	}
	if len(c.Mistakers) == 0 {
		invalid("mistakers must name at least one variant")
	}
	if _, err := c.BuildMistakers(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}

	switch c.Segmenter.Kind {
	case SplitterRules:
	case SplitterSaT:
		if c.Segmenter.Model == "" || c.Segmenter.Tokenizer == "" {
			invalid("segmenter.model and segmenter.tokenizer are required for %q", SplitterSaT)
		}
		if c.Segmenter.Threshold <= 0 || c.Segmenter.Threshold >= 1 {
			invalid("segmenter.threshold must be within (0, 1), got %v", c.Segmenter.Threshold)
		}
	default:
		invalid("segmenter.kind must be %q or %q, got %q", SplitterRules, SplitterSaT, c.Segmenter.Kind)
	}

	return errors.Join(errs...)
}

// MistakeOptions returns the options shared by every configured mistaker.
func (c Config) MistakeOptions() []mistake.Option {
	return []mistake.Option{
		mistake.WithProbability(c.ErrorProbability),
		mistake.WithPalette(c.Palette),
	}
}

// BuildMistakers constructs the configured mistakers in order.
func (c Config) BuildMistakers() ([]mistake.Mistaker, error) {
	opts := c.MistakeOptions()
	out := make([]mistake.Mistaker, 0, len(c.Mistakers))
	for _, name := range c.Mistakers {
		m, err := mistake.New(name, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
