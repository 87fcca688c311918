package corpus

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/jamesainslie/go-corpus/mistake"
)

// pairNamespace scopes pair IDs so they never collide with UUIDs minted
// for other purposes.
var pairNamespace = uuid.MustParse("5c1f0d6e-8a4b-4f1e-9d3a-2b7c6e4f8a10")

// Pair is one supervised training example.
type Pair struct {
	ID       string `json:"id"`
	Clean    string `json:"clean"`
	Noisy    string `json:"noisy"`
	Mistaker string `json:"mistaker"`
}

// MakePairs corrupts every chunk with m, drawing randomness from r. The
// same r state, mistaker and chunks always give the same pairs, IDs
// included.
func MakePairs(r mistake.Rand, m mistake.Mistaker, chunks []string) []Pair {
	if len(chunks) == 0 {
		return nil
	}

	name := m.Name()
	pairs := make([]Pair, len(chunks))
	for i, clean := range chunks {
		noisy := m.MakeMistake(r, clean)
		pairs[i] = Pair{
			ID:       pairID(i, name, clean, noisy),
			Clean:    clean,
			Noisy:    noisy,
			Mistaker: name,
		}
	}
	return pairs
}

func pairID(i int, mistaker, clean, noisy string) string {
	key := strconv.Itoa(i) + "\x00" + mistaker + "\x00" + clean + "\x00" + noisy
	return uuid.NewSHA1(pairNamespace, []byte(key)).String()
}
