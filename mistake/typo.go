package mistake

// Typographical produces keyboard-style typos: adjacent swaps, dropped
// characters, stray insertions and wrong characters.
type Typographical struct {
	gate    gate
	palette Palette
}

var _ Mistaker = (*Typographical)(nil)

// NewTypographical returns a Typographical mistaker.
func NewTypographical(opts ...Option) (*Typographical, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Typographical{gate: gate(cfg.probability), palette: cfg.palette}, nil
}

// Name implements Mistaker.
func (t *Typographical) Name() string { return "typo" }

// MakeMistake rolls the gate once per word; a word that passes receives
// exactly one of swap, delete, insert or replace, chosen uniformly.
func (t *Typographical) MakeMistake(r Rand, text string) string {
	return mapWords(r, t.gate, text, func(word string) string {
		switch r.IntN(4) {
		case 0:
			return SwapAdjacent(r, word)
		case 1:
			return Delete(r, word)
		case 2:
			return Insert(r, word, t.palette)
		default:
			return Replace(r, word, t.palette)
		}
	})
}
