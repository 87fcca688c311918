package bench

import (
	"fmt"
	"slices"

	"github.com/jamesainslie/go-corpus"
	"github.com/jamesainslie/go-corpus/mistake"
)

// SweepResult holds metrics for one error probability.
type SweepResult struct {
	Probability float64
	Metrics     Metrics
}

// SweepProbabilities generates probabilities from lo up to hi inclusive
// with the given step, clamped to [0, 1].
func SweepProbabilities(lo, hi, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	eps := step / 1e6
	var probs []float64
	for i := 0; ; i++ {
		p := lo + float64(i)*step
		if p > hi+eps || p > 1+eps {
			break
		}
		if p >= 0 {
			probs = append(probs, min(p, 1))
		}
	}
	return probs
}

// Sweep corrupts chunks with the named mistaker at each probability and
// measures the result. Every probability starts from the same seed.
func Sweep(chunks []string, name string, seed uint64, probs []float64, opts ...mistake.Option) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(probs))
	for _, p := range probs {
		m, err := mistake.New(name, append(slices.Clip(opts), mistake.WithProbability(p))...)
		if err != nil {
			return nil, fmt.Errorf("building %s at p=%v: %w", name, p, err)
		}

		pairs := corpus.MakePairs(mistake.NewRand(seed), m, chunks)
		results = append(results, SweepResult{
			Probability: p,
			Metrics:     Evaluate(pairs),
		})
	}
	return results, nil
}
