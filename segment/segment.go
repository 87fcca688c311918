// Package segment provides the tokenization service used when preparing a
// corpus: splitting extracted text into sentences and sentences into word
// tokens.
//
// # Splitters
//
// Rules is a punctuation-driven splitter with an abbreviation guard. It
// needs no model files and is the default.
//
// SaT detects boundaries with a wtpsplit/SaT ONNX model:
//
//	sat, err := segment.NewSaT("model.onnx", "sentencepiece.bpe.model")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sat.Close()
//
//	sentences, err := sat.Split(ctx, text)
//
// # Words
//
// UAX29 splits a sentence on Unicode word boundaries and drops whitespace,
// so punctuation becomes a token of its own: "The cat sat." yields
// "The", "cat", "sat", ".".
package segment

import "context"

// SentenceSplitter splits text into ordered sentences. Sentences are
// trimmed and never empty.
type SentenceSplitter interface {
	Split(ctx context.Context, text string) ([]string, error)
}

// WordTokenizer splits a sentence into ordered word tokens.
type WordTokenizer interface {
	Words(sentence string) []string
}
