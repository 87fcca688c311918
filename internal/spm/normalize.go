package spm

import (
	"unicode"
	"unicode/utf8"
)

const spaceMark = '▁' // U+2581 LOWER ONE EIGHTH BLOCK

// normalize prepares text for tokenization following XLM-RoBERTa conventions:
// a dummy prefix before the first word, whitespace runs collapsed into a
// single ▁, trailing whitespace dropped.
//
// ends[k] is the byte offset in text just past the character that produced
// runes[k]. A ▁ maps to the start of the word it precedes.
func normalize(text string) (runes []rune, ends []int) {
	needSpace := true
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			if len(runes) > 0 {
				needSpace = true
			}
			i += size
			continue
		}
		if needSpace {
			runes = append(runes, spaceMark)
			ends = append(ends, i)
			needSpace = false
		}
		i += size
		runes = append(runes, r)
		ends = append(ends, i)
	}
	return runes, ends
}
