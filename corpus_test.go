package corpus

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSplitter returns fixed sentences regardless of input.
type staticSplitter []string

func (s staticSplitter) Split(context.Context, string) ([]string, error) { return s, nil }

type failingSplitter struct{ err error }

func (f failingSplitter) Split(context.Context, string) ([]string, error) { return nil, f.err }

func TestNew_InvalidChunkSize(t *testing.T) {
	_, err := New(WithMaxChunkSize(0))
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

func TestPrepare_Scenario(t *testing.T) {
	p, err := New(WithMaxChunkSize(10), WithSplitter(staticSplitter{"The cat sat.", "it jumped."}))
	require.NoError(t, err)

	chunks, err := p.Prepare(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, []string{"The cat sat."}, chunks)
}

func TestPrepare_RulesSplitter(t *testing.T) {
	p, err := New(WithMaxChunkSize(10))
	require.NoError(t, err)

	text := `CHAPTER I

Mr. Brown said "hello there" to her. She waved back! Did he see it? and then nothing`

	chunks, err := p.Prepare(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Mr. Brown said "hello there" to her.`,
		"She waved back! Did he see it?",
	}, chunks)
}

func TestPrepare_Empty(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	chunks, err := p.Prepare(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, chunks)
}

func TestPrepare_SplitterError(t *testing.T) {
	boom := errors.New("boom")
	p, err := New(WithSplitter(failingSplitter{boom}))
	require.NoError(t, err)

	_, err = p.Prepare(context.Background(), "text")
	assert.ErrorIs(t, err, boom)

	_, err = p.PrepareBook(context.Background(), Book{Title: "t", Text: "text"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"t"`)
}

func TestPrepareBook_Stats(t *testing.T) {
	p, err := New(WithMaxChunkSize(6))
	require.NoError(t, err)

	res, err := p.PrepareBook(context.Background(), Book{
		Title: "tiny",
		Text:  "One two three. Four five six. lower case. Seven.",
	})
	require.NoError(t, err)

	assert.Equal(t, "tiny", res.Title)
	assert.Equal(t, []string{"One two three.", "Four five six. Seven."}, res.Chunks)
	assert.Equal(t, 4, res.Stats.Sentences)
	assert.Equal(t, 3, res.Stats.Admitted)
	assert.Equal(t, 2, res.Stats.Chunks)
}

func TestProcessBooks(t *testing.T) {
	books := []Book{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}}

	var (
		mu   sync.Mutex
		seen []string
	)
	err := ProcessBooks(context.Background(), books, 2, func(_ context.Context, b Book) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, b.Title)
		return nil
	})
	require.NoError(t, err)

	slices.Sort(seen)
	assert.Equal(t, []string{"a", "b", "c", "d"}, seen)
}

func TestProcessBooks_RespectsLimit(t *testing.T) {
	books := make([]Book, 20)
	var running, peak atomic.Int32

	err := ProcessBooks(context.Background(), books, 3, func(context.Context, Book) error {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestProcessBooks_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	books := []Book{{Title: "ok"}, {Title: "bad"}, {Title: "ok2"}}

	err := ProcessBooks(context.Background(), books, 1, func(_ context.Context, b Book) error {
		if b.Title == "bad" {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestProcessBooks_InvalidWorkers(t *testing.T) {
	err := ProcessBooks(context.Background(), nil, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestProcessBooks_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := ProcessBooks(ctx, []Book{{Title: "a"}}, 1, func(context.Context, Book) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestBookSeed(t *testing.T) {
	assert.Equal(t, BookSeed(42, "Abai"), BookSeed(42, "Abai"))
	assert.NotEqual(t, BookSeed(42, "Abai"), BookSeed(42, "Abai Zholy"))
	assert.NotEqual(t, BookSeed(1, "Abai"), BookSeed(2, "Abai"))
}

func TestPrepare_ChunksNeverSplitWords(t *testing.T) {
	p, err := New(WithMaxChunkSize(5))
	require.NoError(t, err)

	text := strings.Repeat("A short line here. ", 10)
	chunks, err := p.Prepare(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, chunks, 10)
	for _, c := range chunks {
		assert.Equal(t, "A short line here.", c)
	}
}
