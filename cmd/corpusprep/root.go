package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-corpus/config"
	"github.com/jamesainslie/go-corpus/segment"
)

var version = "dev"

// app holds state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "corpusprep",
		Short: "Prepare text-correction training corpora",
		Long: `corpusprep splits books into sentence-aligned, word-budgeted chunks,
normalizes their punctuation, and pairs them with synthetically corrupted
copies for training a text-correction model.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newBuildCmd(a),
		newMistakeCmd(a),
		newBenchCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(w io.Writer) error {
	level, err := log.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	a.logger = slog.New(handler)

	a.cfg = config.Default()
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.logger.Debug("loaded config", "path", a.configPath)
	}
	return nil
}

// splitter builds the configured sentence splitter. The returned close
// function is never nil.
func (a *app) splitter() (segment.SentenceSplitter, func(), error) {
	seg := a.cfg.Segmenter
	if seg.Kind != config.SplitterSaT {
		return segment.Rules{}, func() {}, nil
	}

	sat, err := segment.NewSaT(seg.Model, seg.Tokenizer,
		segment.WithThreshold(float32(seg.Threshold)),
		segment.WithPoolSize(a.cfg.Workers),
		segment.WithLogger(a.logger),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("loading sat model: %w", err)
	}
	return sat, func() {
		if err := sat.Close(); err != nil {
			a.logger.Warn("closing sat model", "err", err)
		}
	}, nil
}
