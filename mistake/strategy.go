package mistake

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The primitives below operate on user-perceived characters (grapheme
// clusters), so a base letter and its combining marks move as one unit.
// Every primitive is total: degenerate input comes back unchanged.

// Insert places one palette character at a uniform position in [0, len(word)].
// An empty word yields a single character. An empty palette is a no-op.
func Insert(r Rand, word string, p Palette) string {
	if len(p) == 0 {
		return word
	}
	chars := graphemes(word)
	idx := r.IntN(len(chars) + 1)
	return join(chars[:idx]) + p.pick(r) + join(chars[idx:])
}

// Replace overwrites the character at a uniform position with a palette
// character.
func Replace(r Rand, word string, p Palette) string {
	if word == "" || len(p) == 0 {
		return word
	}
	chars := graphemes(word)
	idx := r.IntN(len(chars))
	return join(chars[:idx]) + p.pick(r) + join(chars[idx+1:])
}

// Delete removes the character at a uniform position. Words of one
// character or fewer are returned as is.
func Delete(r Rand, word string) string {
	chars := graphemes(word)
	if len(chars) <= 1 {
		return word
	}
	idx := r.IntN(len(chars))
	return join(chars[:idx]) + join(chars[idx+1:])
}

// SwapAdjacent exchanges the characters at idx and idx+1 for a uniform idx.
func SwapAdjacent(r Rand, word string) string {
	chars := graphemes(word)
	if len(chars) <= 1 {
		return word
	}
	idx := r.IntN(len(chars) - 1)

	var b strings.Builder
	b.Grow(len(word))
	b.WriteString(join(chars[:idx]))
	b.WriteString(chars[idx+1])
	b.WriteString(chars[idx])
	b.WriteString(join(chars[idx+2:]))
	return b.String()
}

// Merge joins the word at a uniform index with its right neighbour.
// The input slice is never modified; a new slice is returned.
func Merge(r Rand, words []string) []string {
	if len(words) < 2 {
		return words
	}
	return MergeAt(words, r.IntN(len(words)-1))
}

// MergeAt joins words[i] and words[i+1] into a new slice. An index without a
// right neighbour is a no-op.
func MergeAt(words []string, i int) []string {
	if i < 0 || i >= len(words)-1 {
		return words
	}
	out := make([]string, 0, len(words)-1)
	out = append(out, words[:i]...)
	out = append(out, words[i]+words[i+1])
	out = append(out, words[i+2:]...)
	return out
}

// ModifyCase flips the case of one uniformly chosen character. Lowercase
// goes up, anything else goes down.
func ModifyCase(r Rand, word string) string {
	if word == "" {
		return word
	}
	chars := graphemes(word)
	idx := r.IntN(len(chars))

	c := chars[idx]
	first, _ := utf8.DecodeRuneInString(c)
	if unicode.IsLower(first) {
		c = cases.Upper(language.Und).String(c)
	} else {
		c = cases.Lower(language.Und).String(c)
	}
	return join(chars[:idx]) + c + join(chars[idx+1:])
}

func graphemes(word string) []string {
	if word == "" {
		return nil
	}
	chars := make([]string, 0, len(word))
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}

func join(chars []string) string {
	return strings.Join(chars, "")
}
