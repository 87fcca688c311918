package spm

import (
	"fmt"
	"unicode/utf8"
)

// unkPenalty is subtracted from the lowest piece score to price characters
// no piece covers, as SentencePiece does.
const unkPenalty = 10

const negInf = -1e9

// Tokenizer implements XLM-RoBERTa compatible SentencePiece unigram
// tokenization. It is immutable and safe for concurrent use.
//
// Token IDs are remapped from SentencePiece indices to the fairseq layout
// used by HuggingFace XLM-RoBERTa:
//   - HF[0] = <s>   (SP[1])
//   - HF[1] = <pad> (not in SentencePiece)
//   - HF[2] = </s>  (SP[2])
//   - HF[3] = <unk> (SP[0])
//   - HF[n+1] = SP[n] for n >= 3
type Tokenizer struct {
	pieces   map[string]int32 // matchable piece -> SentencePiece index
	scores   []float32        // by SentencePiece index
	unkIndex int32
	unkScore float64
	maxRunes int
}

// Token is a piece with byte offsets into the original text.
type Token struct {
	ID    int32
	Text  string
	Start int
	End   int
}

// New loads a tokenizer from a SentencePiece .model file.
func New(modelPath string) (*Tokenizer, error) {
	model, err := LoadModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	return FromModel(model), nil
}

// FromModel builds a tokenizer from a decoded model.
func FromModel(model *Model) *Tokenizer {
	t := &Tokenizer{
		pieces: make(map[string]int32, len(model.Pieces)),
		scores: make([]float32, len(model.Pieces)),
	}

	var minScore float32
	for i, p := range model.Pieces {
		t.scores[i] = p.Score
		if p.Score < minScore {
			minScore = p.Score
		}

		switch p.Type {
		case Unknown:
			t.unkIndex = int32(i)
		case Normal, UserDefined:
			t.pieces[p.Piece] = int32(i)
			if n := utf8.RuneCountInString(p.Piece); n > t.maxRunes {
				t.maxRunes = n
			}
		}
	}
	t.unkScore = float64(minScore) - unkPenalty

	return t
}

// Encode tokenizes text with the Viterbi algorithm.
func (t *Tokenizer) Encode(text string) []Token {
	runes, ends := normalize(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	// best[i] is the best score for runes[:i]; parent[i] is where the last
	// piece of that segmentation starts.
	best := make([]float64, n+1)
	parent := make([]int, n+1)
	for i := 1; i <= n; i++ {
		best[i] = negInf
		for length := 1; length <= min(t.maxRunes, i); length++ {
			j := i - length
			sp, ok := t.pieces[string(runes[j:i])]
			if !ok {
				continue
			}
			if candidate := best[j] + float64(t.scores[sp]); candidate > best[i] {
				best[i] = candidate
				parent[i] = j
			}
		}

		if best[i] == negInf {
			best[i] = best[i-1] + t.unkScore
			parent[i] = i - 1
		}
	}

	var tokens []Token
	for pos := n; pos > 0; pos = parent[pos] {
		j := parent[pos]
		piece := string(runes[j:pos])

		sp, ok := t.pieces[piece]
		if !ok {
			sp = t.unkIndex
		}

		start := 0
		if j > 0 {
			start = ends[j-1]
		}
		tokens = append(tokens, Token{
			ID:    spIndexToHFID(sp),
			Text:  piece,
			Start: start,
			End:   ends[pos-1],
		})
	}

	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return tokens
}

// VocabSize returns the HuggingFace vocabulary size: SentencePiece pieces
// plus the inserted <pad> and the shift it causes.
func (t *Tokenizer) VocabSize() int {
	return len(t.scores) + 2
}

// Close releases tokenizer resources.
func (t *Tokenizer) Close() error {
	return nil
}

func spIndexToHFID(spIndex int32) int32 {
	switch spIndex {
	case 0: // <unk>
		return 3
	case 1: // <s>
		return 0
	case 2: // </s>
		return 2
	default:
		return spIndex + 1
	}
}
