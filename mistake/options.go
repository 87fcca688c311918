package mistake

import (
	"fmt"
	"math"
)

// DefaultProbability is the per-unit chance of applying a mistake.
const DefaultProbability = 0.2

// Option configures a Mistaker.
type Option func(*config)

type config struct {
	probability float64
	palette     Palette
}

func defaultConfig() config {
	return config{
		probability: DefaultProbability,
		palette:     NewPalette(KazakhCyrillic),
	}
}

// WithProbability sets the per-unit error probability (default: 0.2).
// Values outside [0, 1] are rejected by the constructor.
func WithProbability(p float64) Option {
	return func(c *config) {
		c.probability = p
	}
}

// WithPalette sets the characters used for insertions and replacements
// (default: KazakhCyrillic).
func WithPalette(chars string) Option {
	return func(c *config) {
		c.palette = NewPalette(chars)
	}
}

func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.probability) || cfg.probability < 0 || cfg.probability > 1 {
		return config{}, fmt.Errorf("%w: %v", ErrInvalidProbability, cfg.probability)
	}
	if len(cfg.palette) == 0 {
		return config{}, ErrEmptyPalette
	}
	return cfg, nil
}
