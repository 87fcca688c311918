package corpus

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// ProcessBooks calls fn for every book, running at most workers calls at
// once. The first error cancels the context passed to the remaining calls
// and is returned.
func ProcessBooks(ctx context.Context, books []Book, workers int, fn func(context.Context, Book) error) error {
	if workers < 1 {
		return ErrInvalidWorkers
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, book := range books {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, book)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// BookSeed derives a per-book random seed from a run seed and the book
// title, so a book's noise does not depend on which worker handles it.
func BookSeed(seed uint64, title string) uint64 {
	return seed ^ xxhash.Sum64String(title)
}
