package mistake

// WordMerge drops the whitespace between adjacent words, e.g.
// "the cat" -> "thecat".
type WordMerge struct {
	gate gate
}

var _ Mistaker = (*WordMerge)(nil)

// NewWordMerge returns a WordMerge mistaker. The palette option is accepted
// and ignored.
func NewWordMerge(opts ...Option) (*WordMerge, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &WordMerge{gate: gate(cfg.probability)}, nil
}

// Name implements Mistaker.
func (m *WordMerge) Name() string { return "merge" }

// MakeMistake rolls the gate once per adjacent pair. A merged word is not
// merged again with its next neighbour.
func (m *WordMerge) MakeMistake(r Rand, text string) string {
	if text == "" {
		return ""
	}
	w := splitWords(text)
	for i := 0; i+1 < len(w.words); i++ {
		if !m.gate.pass(r) {
			continue
		}
		w.words = MergeAt(w.words, i)
		w.gaps = append(w.gaps[:i+1:i+1], w.gaps[i+2:]...)
	}
	return w.String()
}
