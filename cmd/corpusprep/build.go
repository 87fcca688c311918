package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-corpus"
	"github.com/jamesainslie/go-corpus/dataset"
	"github.com/jamesainslie/go-corpus/extract"
	"github.com/jamesainslie/go-corpus/mistake"
)

type buildOptions struct {
	input  string
	output string
	pairs  bool

	maxChunkSize int
	workers      int
	seed         uint64
	probability  float64
	mistakers    []string
}

func newBuildCmd(a *app) *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Chunk every book in a directory and write the dataset",
		Example: `  corpusprep build --input books/ --output dataset/
  corpusprep build --input books/ --output dataset/ --pairs --mistaker typo --mistaker merge+case`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("max-chunk-size") {
				a.cfg.MaxChunkSize = opts.maxChunkSize
			}
			if flags.Changed("workers") {
				a.cfg.Workers = opts.workers
			}
			if flags.Changed("seed") {
				a.cfg.Seed = opts.seed
			}
			if flags.Changed("probability") {
				a.cfg.ErrorProbability = opts.probability
			}
			if flags.Changed("mistaker") {
				a.cfg.Mistakers = opts.mistakers
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.build(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "directory of .epub and .txt books")
	f.StringVarP(&opts.output, "output", "o", "", "output directory")
	f.BoolVar(&opts.pairs, "pairs", false, "also write clean/noisy training pairs")
	f.IntVar(&opts.maxChunkSize, "max-chunk-size", 0, "word budget per chunk (overrides config)")
	f.IntVarP(&opts.workers, "workers", "w", 0, "books processed at once (overrides config)")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for pairs (overrides config)")
	f.Float64VarP(&opts.probability, "probability", "p", 0, "error probability (overrides config)")
	f.StringSliceVarP(&opts.mistakers, "mistaker", "m", nil, "mistaker name, repeatable (overrides config)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (a *app) build(ctx context.Context, opts buildOptions) error {
	same, err := samePath(opts.input, opts.output)
	if err != nil {
		return err
	}
	if same {
		return fmt.Errorf("output directory must differ from input directory %s", opts.input)
	}

	files, err := extract.Find(opts.input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .epub or .txt files in %s", opts.input)
	}

	var mistakers []mistake.Mistaker
	if opts.pairs {
		mistakers, err = a.cfg.BuildMistakers()
		if err != nil {
			return err
		}
	}

	splitter, closeSplitter, err := a.splitter()
	if err != nil {
		return err
	}
	defer closeSplitter()

	prep, err := corpus.New(
		corpus.WithMaxChunkSize(a.cfg.MaxChunkSize),
		corpus.WithSplitter(splitter),
		corpus.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	books := make([]corpus.Book, 0, len(files))
	sources := make(map[string]string, len(files))
	for _, f := range files {
		book, err := extract.Load(f)
		if err != nil {
			if errors.Is(err, extract.ErrInvalidEPUB) {
				a.logger.Warn("skipping book", "file", f, "err", err)
				continue
			}
			return err
		}
		if prev, ok := sources[book.Title]; ok {
			return fmt.Errorf("%s and %s share the title %q", prev, f, book.Title)
		}
		sources[book.Title] = f
		books = append(books, book)
	}

	out, err := dataset.NewWriter(opts.output)
	if err != nil {
		return err
	}

	var chunks, pairs atomic.Int64
	err = corpus.ProcessBooks(ctx, books, a.cfg.Workers, func(ctx context.Context, book corpus.Book) error {
		res, err := prep.PrepareBook(ctx, book)
		if err != nil {
			return err
		}
		path, err := out.Chunks(book.Title, res.Chunks)
		if err != nil {
			return err
		}
		chunks.Add(int64(len(res.Chunks)))
		a.logger.Debug("wrote chunks", "path", path, "chunks", len(res.Chunks))

		if len(mistakers) == 0 {
			return nil
		}

		// Each book draws from its own source.
		rng := mistake.NewRand(corpus.BookSeed(a.cfg.Seed, book.Title))
		var bookPairs []corpus.Pair
		for _, m := range mistakers {
			bookPairs = append(bookPairs, corpus.MakePairs(rng, m, res.Chunks)...)
		}
		path, err = out.Pairs(book.Title, bookPairs)
		if err != nil {
			return err
		}
		pairs.Add(int64(len(bookPairs)))
		a.logger.Debug("wrote pairs", "path", path, "pairs", len(bookPairs))
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info("dataset built",
		"books", len(books),
		"chunks", chunks.Load(),
		"pairs", pairs.Load(),
		"output", out.Dir(),
	)
	return nil
}

// samePath reports whether a and b name the same directory. A path that
// does not exist yet only matches by its cleaned absolute form.
func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}

	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	if errA != nil || errB != nil {
		return false, nil
	}
	return os.SameFile(infoA, infoB), nil
}
