package mistake

// Casing flips the case of one character in selected words.
type Casing struct {
	gate gate
}

var _ Mistaker = (*Casing)(nil)

// NewCasing returns a Casing mistaker.
func NewCasing(opts ...Option) (*Casing, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Casing{gate: gate(cfg.probability)}, nil
}

// Name implements Mistaker.
func (c *Casing) Name() string { return "case" }

// MakeMistake implements Mistaker.
func (c *Casing) MakeMistake(r Rand, text string) string {
	return mapWords(r, c.gate, text, func(word string) string {
		return ModifyCase(r, word)
	})
}
