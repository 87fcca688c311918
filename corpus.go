package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jamesainslie/go-corpus/chunker"
	"github.com/jamesainslie/go-corpus/normalize"
	"github.com/jamesainslie/go-corpus/segment"
)

// Preparer turns raw text into normalized chunks.
// It is safe for concurrent use if its splitter is.
type Preparer struct {
	splitter segment.SentenceSplitter
	chunker  *chunker.Chunker
	logger   *slog.Logger
}

// Book is one source document.
type Book struct {
	Title string
	Text  string
}

// BookResult holds the chunks prepared from a Book.
type BookResult struct {
	Title  string
	Chunks []string
	Stats  chunker.Stats
}

// New creates a Preparer. Configuration errors are reported here, before
// any text is processed.
func New(opts ...Option) (*Preparer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ch, err := chunker.New(
		chunker.WithMaxWords(cfg.maxChunkSize),
		chunker.WithTokenizer(cfg.tokenizer),
		chunker.WithLogger(cfg.logger),
	)
	if err != nil {
		if errors.Is(err, chunker.ErrInvalidChunkSize) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, cfg.maxChunkSize)
		}
		return nil, err
	}

	return &Preparer{
		splitter: cfg.splitter,
		chunker:  ch,
		logger:   cfg.logger,
	}, nil
}

// Prepare splits text into sentences, chunks them and normalizes each
// chunk. The result is in source order.
func (p *Preparer) Prepare(ctx context.Context, text string) ([]string, error) {
	chunks, _, err := p.prepare(ctx, text)
	return chunks, err
}

// PrepareBook is Prepare with the book's title and chunking stats attached.
func (p *Preparer) PrepareBook(ctx context.Context, book Book) (BookResult, error) {
	chunks, stats, err := p.prepare(ctx, book.Text)
	if err != nil {
		return BookResult{}, fmt.Errorf("preparing %q: %w", book.Title, err)
	}

	p.logger.Info("prepared book",
		"title", book.Title,
		"sentences", stats.Sentences,
		"admitted", stats.Admitted,
		"chunks", stats.Chunks,
	)
	return BookResult{Title: book.Title, Chunks: chunks, Stats: stats}, nil
}

func (p *Preparer) prepare(ctx context.Context, text string) ([]string, chunker.Stats, error) {
	sentences, err := p.splitter.Split(ctx, text)
	if err != nil {
		return nil, chunker.Stats{}, fmt.Errorf("splitting sentences: %w", err)
	}

	chunks, stats := p.chunker.Chunk(sentences)
	if len(chunks) == 0 {
		return nil, stats, nil
	}

	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = normalize.Text(c.Text())
	}
	return out, stats, nil
}
