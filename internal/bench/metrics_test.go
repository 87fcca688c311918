package bench

import (
	"math"
	"testing"

	"github.com/jamesainslie/go-corpus"
	"github.com/jamesainslie/go-corpus/chunker"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		pairs         []corpus.Pair
		wantChanged   int
		wantWords     int
		wantEdits     int
		wantWordRate  float64
		wantPairsDiff int
	}{
		{
			name:        "identical",
			pairs:       []corpus.Pair{{Clean: "The cat sat.", Noisy: "The cat sat."}},
			wantChanged: 0, wantWords: 3, wantEdits: 0, wantWordRate: 0,
		},
		{
			name:        "one typo",
			pairs:       []corpus.Pair{{Clean: "The cat sat.", Noisy: "The act sat."}},
			wantChanged: 1, wantWords: 3, wantEdits: 2, wantWordRate: 1.0 / 3, wantPairsDiff: 1,
		},
		{
			name:        "merge shifts later words",
			pairs:       []corpus.Pair{{Clean: "a b c", Noisy: "ab c"}},
			wantChanged: 3, wantWords: 3, wantEdits: 1, wantWordRate: 1, wantPairsDiff: 1,
		},
		{
			name: "cyrillic counts runes",
			pairs: []corpus.Pair{
				{Clean: "ауа", Noisy: "аа"},
				{Clean: "жақсы", Noisy: "жақсы"},
			},
			wantChanged: 1, wantWords: 2, wantEdits: 1, wantWordRate: 0.5, wantPairsDiff: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.pairs)

			if got.ChangedWords != tt.wantChanged {
				t.Errorf("ChangedWords = %d, want %d", got.ChangedWords, tt.wantChanged)
			}
			if got.Words != tt.wantWords {
				t.Errorf("Words = %d, want %d", got.Words, tt.wantWords)
			}
			if got.CharEdits != tt.wantEdits {
				t.Errorf("CharEdits = %d, want %d", got.CharEdits, tt.wantEdits)
			}
			if got.ChangedPairs != tt.wantPairsDiff {
				t.Errorf("ChangedPairs = %d, want %d", got.ChangedPairs, tt.wantPairsDiff)
			}
			if math.Abs(got.WordChangeRate-tt.wantWordRate) > 1e-9 {
				t.Errorf("WordChangeRate = %v, want %v", got.WordChangeRate, tt.wantWordRate)
			}
		})
	}
}

func TestEvaluate_CharEditRate(t *testing.T) {
	got := Evaluate([]corpus.Pair{{Clean: "ауа", Noisy: "аа"}})
	if got.Chars != 3 {
		t.Errorf("Chars = %d, want 3", got.Chars)
	}
	if math.Abs(got.CharEditRate-1.0/3) > 1e-9 {
		t.Errorf("CharEditRate = %v, want 1/3", got.CharEditRate)
	}
}

func TestEvaluate_Empty(t *testing.T) {
	if got := Evaluate(nil); got != (Metrics{}) {
		t.Errorf("Evaluate(nil) = %+v, want zero", got)
	}
}

func TestChunkStats(t *testing.T) {
	chunks := []chunker.Chunk{
		{Words: []string{"a", "b", "c"}},
		{Words: []string{"d"}},
		{Words: []string{"e", "f", "g", "h", "i", "j"}},
	}

	got := ChunkStats(chunks, 4)
	want := ChunkReport{Chunks: 3, TotalWords: 10, MeanWords: 10.0 / 3, MaxWords: 6, Oversized: 1}
	if got != want {
		t.Errorf("ChunkStats() = %+v, want %+v", got, want)
	}

	if got := ChunkStats(nil, 4); got != (ChunkReport{}) {
		t.Errorf("ChunkStats(nil) = %+v, want zero", got)
	}
}
