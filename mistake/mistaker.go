// Package mistake injects controlled, reproducible errors into clean text
// to build noisy/clean training pairs.
//
// Primitives (Insert, Replace, Delete, SwapAdjacent, Merge, ModifyCase) are
// plain functions shared by every Mistaker. A Mistaker decides per word, or
// per adjacent word pair, whether to apply one of them by rolling an
// independent Bernoulli gate.
//
// Mistakers hold only their configuration and are safe for concurrent use.
// Randomness comes from the Rand passed to each call; share a Rand across
// goroutines only with external locking.
package mistake

import (
	"strings"
	"unicode"
)

// Mistaker corrupts text.
type Mistaker interface {
	// Name identifies the variant, e.g. "typo".
	Name() string
	// MakeMistake returns a noisy copy of text. It never fails; empty text
	// yields empty text.
	MakeMistake(r Rand, text string) string
}

// gate is the per-unit Bernoulli trial.
type gate float64

func (g gate) pass(r Rand) bool {
	return r.Float64() < float64(g)
}

// words is text split into words and the whitespace around them.
// gaps[i] precedes words[i]; the final gap trails the last word, so
// len(gaps) == len(words)+1 whenever text is non-empty.
type words struct {
	words []string
	gaps  []string
}

func splitWords(text string) words {
	var w words
	inWord := false
	gapStart := 0
	wordStart := 0

	for i, r := range text {
		space := unicode.IsSpace(r)
		switch {
		case space && inWord:
			w.words = append(w.words, text[wordStart:i])
			gapStart = i
			inWord = false
		case !space && !inWord:
			w.gaps = append(w.gaps, text[gapStart:i])
			wordStart = i
			inWord = true
		}
	}
	if inWord {
		w.words = append(w.words, text[wordStart:])
		w.gaps = append(w.gaps, "")
	} else {
		w.gaps = append(w.gaps, text[gapStart:])
	}
	return w
}

func (w words) String() string {
	var b strings.Builder
	for i, word := range w.words {
		b.WriteString(w.gaps[i])
		b.WriteString(word)
	}
	b.WriteString(w.gaps[len(w.gaps)-1])
	return b.String()
}

// mapWords rolls the gate for every word and rewrites the ones that pass.
func mapWords(r Rand, g gate, text string, fn func(string) string) string {
	if text == "" {
		return ""
	}
	w := splitWords(text)
	for i, word := range w.words {
		if g.pass(r) {
			w.words[i] = fn(word)
		}
	}
	return w.String()
}
