package bench

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jamesainslie/go-corpus"
)

// Metrics describes how far noisy text drifted from clean text.
type Metrics struct {
	Pairs        int
	ChangedPairs int
	Words        int // words in clean text
	ChangedWords int
	Chars        int // characters in clean text
	CharEdits    int // Levenshtein distance summed over pairs

	WordChangeRate float64
	CharEditRate   float64
}

// Evaluate compares each pair's noisy text against its clean text.
// Words are compared by position; a merge shifts every later word, so
// merged text reports a high word change rate.
func Evaluate(pairs []corpus.Pair) Metrics {
	var m Metrics
	for _, p := range pairs {
		m.Pairs++
		if p.Clean != p.Noisy {
			m.ChangedPairs++
		}

		clean := strings.Fields(p.Clean)
		noisy := strings.Fields(p.Noisy)
		m.Words += len(clean)
		for i, w := range clean {
			if i >= len(noisy) || noisy[i] != w {
				m.ChangedWords++
			}
		}

		m.Chars += utf8.RuneCountInString(p.Clean)
		m.CharEdits += levenshtein.ComputeDistance(p.Clean, p.Noisy)
	}

	if m.Words > 0 {
		m.WordChangeRate = float64(m.ChangedWords) / float64(m.Words)
	}
	if m.Chars > 0 {
		m.CharEditRate = float64(m.CharEdits) / float64(m.Chars)
	}
	return m
}
