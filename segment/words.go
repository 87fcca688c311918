package segment

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// UAX29 tokenizes words following Unicode Standard Annex #29.
// The zero value is ready to use.
type UAX29 struct{}

var _ WordTokenizer = UAX29{}

// Words returns the non-whitespace segments of sentence.
func (UAX29) Words(sentence string) []string {
	var out []string
	tokens := words.FromString(sentence)
	for tokens.Next() {
		tok := tokens.Value()
		if strings.TrimSpace(tok) == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}
