package mistake

import "strings"

// Chain applies several mistakers in order, each to the previous output.
type Chain []Mistaker

var _ Mistaker = Chain(nil)

// Name joins the member names with "+".
func (c Chain) Name() string {
	names := make([]string, len(c))
	for i, m := range c {
		names[i] = m.Name()
	}
	return strings.Join(names, "+")
}

// MakeMistake implements Mistaker.
func (c Chain) MakeMistake(r Rand, text string) string {
	for _, m := range c {
		text = m.MakeMistake(r, text)
	}
	return text
}
