package mistake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays fixed draws so tests can pin positions and choices.
type scripted struct {
	ints   []int
	floats []float64
}

func (s *scripted) IntN(n int) int {
	if len(s.ints) == 0 {
		panic("scripted: out of ints")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted: draw out of range")
	}
	return v
}

func (s *scripted) Float64() float64 {
	if len(s.floats) == 0 {
		panic("scripted: out of floats")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func ints(v ...int) *scripted { return &scripted{ints: v} }

func TestDelete(t *testing.T) {
	assert.Equal(t, "ct", Delete(ints(1), "cat"))
	assert.Equal(t, "at", Delete(ints(0), "cat"))
	assert.Equal(t, "a", Delete(ints(), "a"), "single character is a no-op")
	assert.Equal(t, "", Delete(ints(), ""), "empty word is a no-op")
}

func TestSwapAdjacent(t *testing.T) {
	assert.Equal(t, "act", SwapAdjacent(ints(0), "cat"))
	assert.Equal(t, "cta", SwapAdjacent(ints(1), "cat"))
	assert.Equal(t, "x", SwapAdjacent(ints(), "x"))
	assert.Equal(t, "", SwapAdjacent(ints(), ""))
}

func TestInsert(t *testing.T) {
	p := NewPalette("xyz")
	assert.Equal(t, "catz", Insert(ints(3, 2), "cat", p))
	assert.Equal(t, "xcat", Insert(ints(0, 0), "cat", p))
	assert.Equal(t, "y", Insert(ints(0, 1), "", p), "empty word gains one character")
	assert.Equal(t, "cat", Insert(ints(), "cat", nil), "empty palette is a no-op")
}

func TestReplace(t *testing.T) {
	p := NewPalette("b")
	assert.Equal(t, "bat", Replace(ints(0, 0), "cat", p))
	assert.Equal(t, "cab", Replace(ints(2, 0), "cat", p))
	assert.Equal(t, "", Replace(ints(), "", p))
}

func TestModifyCase(t *testing.T) {
	assert.Equal(t, "Cat", ModifyCase(ints(0), "cat"))
	assert.Equal(t, "cat", ModifyCase(ints(0), "Cat"))
	assert.Equal(t, "cAt", ModifyCase(ints(1), "cat"))
	assert.Equal(t, "1", ModifyCase(ints(0), "1"), "caseless characters stay put")
	assert.Equal(t, "Қазақ", ModifyCase(ints(0), "қазақ"))
	assert.Equal(t, "", ModifyCase(ints(), ""))
}

func TestPrimitivesKeepGraphemesTogether(t *testing.T) {
	// "e" followed by a combining acute accent is one character.
	word := "e\u0301"
	assert.Equal(t, word, Delete(ints(), word))
	assert.Equal(t, word, SwapAdjacent(ints(), word))
	assert.Equal(t, "ae\u0301", Insert(ints(0, 0), word, NewPalette("a")))
}

func TestMerge(t *testing.T) {
	in := []string{"the", "cat", "sat"}

	out := Merge(ints(1), in)
	assert.Equal(t, []string{"the", "catsat"}, out)
	assert.Equal(t, []string{"the", "cat", "sat"}, in, "input must not be modified")

	assert.Equal(t, []string{"thecat", "sat"}, Merge(ints(0), in))
	assert.Equal(t, []string{"solo"}, Merge(ints(), []string{"solo"}))
	assert.Empty(t, Merge(ints(), nil))
}

func TestMergeAt_OutOfRange(t *testing.T) {
	in := []string{"a", "b"}
	assert.Equal(t, in, MergeAt(in, 1))
	assert.Equal(t, in, MergeAt(in, -1))
	assert.Equal(t, []string{"ab"}, MergeAt(in, 0))
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for range 100 {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
