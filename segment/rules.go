package segment

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a sentence with byte offsets into the text it was split from.
type Span struct {
	Text  string
	Start int
	End   int
}

// Common abbreviations that shouldn't end sentences
var abbreviations = regexp.MustCompile(`(?i)\b(Mr|Mrs|Ms|Dr|Prof|Sr|Jr|St|vs|etc|i\.e|e\.g|U\.S|U\.K)\.$`)

// Rules splits at sentence-ending punctuation followed by whitespace, and at
// paragraph breaks. Closing quotes and brackets right after the punctuation
// stay with the sentence. The zero value is ready to use.
type Rules struct{}

var _ SentenceSplitter = Rules{}

// Split implements SentenceSplitter.
func (r Rules) Split(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	spans := r.Spans(text)
	if len(spans) == 0 {
		return nil, nil
	}
	sentences := make([]string, len(spans))
	for i, s := range spans {
		sentences[i] = s.Text
	}
	return sentences, nil
}

// Spans splits text into sentences with offsets. Trailing text without
// terminal punctuation is returned as a final span.
func (Rules) Spans(text string) []Span {
	var spans []Span
	start := skipSpace(text, 0)

	emit := func(end int) {
		if trimmed := strings.TrimSpace(text[start:end]); trimmed != "" {
			spans = append(spans, Span{Text: trimmed, Start: start, End: end})
		}
	}

	for i := start; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if r == '\n' && paragraphBreak(text, i+size) {
			emit(i)
			i = skipSpace(text, i)
			start = i
			continue
		}

		if !isTerminal(r) {
			i += size
			continue
		}

		// Absorb runs like "?!" or `."` before looking at what follows.
		end := i + size
		for end < len(text) {
			next, n := utf8.DecodeRuneInString(text[end:])
			if !isTerminal(next) && !isCloser(next) {
				break
			}
			end += n
		}

		if end < len(text) {
			next, _ := utf8.DecodeRuneInString(text[end:])
			if !unicode.IsSpace(next) {
				i = end
				continue
			}
		}

		if r == '.' && abbreviations.MatchString(text[start:i+size]) {
			i = end
			continue
		}

		emit(end)
		i = skipSpace(text, end)
		start = i
	}

	if start < len(text) {
		emit(len(text))
	}
	return spans
}

// paragraphBreak reports whether only whitespace separates i from
// another line break.
func paragraphBreak(text string, i int) bool {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			return true
		}
		if !unicode.IsSpace(r) {
			return false
		}
		i += size
	}
	return false
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…':
		return true
	}
	return false
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '»', '”', '’':
		return true
	}
	return false
}
