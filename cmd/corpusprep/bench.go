package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-corpus/chunker"
	"github.com/jamesainslie/go-corpus/extract"
	"github.com/jamesainslie/go-corpus/internal/bench"
	"github.com/jamesainslie/go-corpus/normalize"
	"github.com/jamesainslie/go-corpus/segment"
)

type benchOptions struct {
	input     string
	mistaker  string
	sweep     bool
	sweepMin  float64
	sweepMax  float64
	sweepStep float64
	compare   bool
	tolerance int
}

func newBenchCmd(a *app) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Report chunk statistics and injected noise for a set of books",
		Example: `  corpusprep bench --input books/
  corpusprep bench --input books/ --sweep --mistaker typo
  corpusprep bench --input books/ --compare --config sat.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("mistaker") && len(a.cfg.Mistakers) > 0 {
				opts.mistaker = a.cfg.Mistakers[0]
			}
			return a.bench(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "directory of .epub and .txt books")
	f.StringVarP(&opts.mistaker, "mistaker", "m", "typo", "mistaker to measure")
	f.BoolVar(&opts.sweep, "sweep", false, "measure noise across a range of probabilities")
	f.Float64Var(&opts.sweepMin, "sweep-min", 0.05, "sweep minimum probability")
	f.Float64Var(&opts.sweepMax, "sweep-max", 0.5, "sweep maximum probability")
	f.Float64Var(&opts.sweepStep, "sweep-step", 0.05, "sweep step size")
	f.BoolVar(&opts.compare, "compare", false, "compare the configured splitter against the rule-based one")
	f.IntVar(&opts.tolerance, "tolerance", 3, "byte tolerance for boundary matching")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (a *app) bench(ctx context.Context, w io.Writer, opts benchOptions) error {
	files, err := extract.Find(opts.input)
	if err != nil {
		return err
	}

	splitter, closeSplitter, err := a.splitter()
	if err != nil {
		return err
	}
	defer closeSplitter()

	ch, err := chunker.New(chunker.WithMaxWords(a.cfg.MaxChunkSize), chunker.WithLogger(a.logger))
	if err != nil {
		return err
	}

	var (
		all      []chunker.Chunk
		texts    []string
		boundary bench.BoundaryMetrics
	)
	for _, f := range files {
		book, err := extract.Load(f)
		if err != nil {
			return err
		}
		sentences, err := splitter.Split(ctx, book.Text)
		if err != nil {
			return fmt.Errorf("splitting %s: %w", book.Title, err)
		}

		if opts.compare {
			reference := segment.Rules{}.Spans(book.Text)
			truth := make([]int, len(reference))
			for i, s := range reference {
				truth[i] = s.End
			}
			m := bench.EvaluateBoundaries(bench.SentenceEnds(book.Text, sentences), truth, opts.tolerance)
			boundary = boundary.Add(m)
		}

		chunks, _ := ch.Chunk(sentences)
		for _, c := range chunks {
			all = append(all, c)
			texts = append(texts, normalize.Text(c.Text()))
		}
	}

	r := bench.ChunkStats(all, a.cfg.MaxChunkSize)
	fmt.Fprintf(w, "Books: %d  Chunks: %d  Words: %d\n", len(files), r.Chunks, r.TotalWords)
	fmt.Fprintf(w, "Mean words: %.1f  Max words: %d  Oversized: %d (budget %d)\n",
		r.MeanWords, r.MaxWords, r.Oversized, a.cfg.MaxChunkSize)

	if opts.compare {
		printBoundaries(w, boundary)
	}

	probs := []float64{a.cfg.ErrorProbability}
	if opts.sweep {
		probs = bench.SweepProbabilities(opts.sweepMin, opts.sweepMax, opts.sweepStep)
	}
	results, err := bench.Sweep(texts, opts.mistaker, a.cfg.Seed, probs, a.cfg.MistakeOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nNoise (%s, seed %d)\n", opts.mistaker, a.cfg.Seed)
	fmt.Fprintln(w, strings.Repeat("-", 44))
	fmt.Fprintf(w, "%-8s %-12s %-12s %-8s\n", "Prob", "WordChange", "CharEdit", "Pairs")
	for _, res := range results {
		m := res.Metrics
		fmt.Fprintf(w, "%-8.2f %-12.4f %-12.4f %d/%d\n",
			res.Probability, m.WordChangeRate, m.CharEditRate, m.ChangedPairs, m.Pairs)
	}
	return nil
}

func printBoundaries(w io.Writer, m bench.BoundaryMetrics) {
	fmt.Fprintf(w, "\nBoundaries vs rules: TP=%d FP=%d FN=%d\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
	fmt.Fprintf(w, "Precision: %.2f  Recall: %.2f  F1: %.2f\n", m.Precision, m.Recall, m.F1)
}
