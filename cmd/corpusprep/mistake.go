package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-corpus/mistake"
)

func newMistakeCmd(a *app) *cobra.Command {
	var (
		name        string
		probability float64
		seed        uint64
	)

	cmd := &cobra.Command{
		Use:   "mistake [TEXT...]",
		Short: "Corrupt text with a mistaker",
		Long: `Corrupt text with a mistaker and print the result. With no arguments,
each line of standard input is corrupted separately.

Mistakers: ` + strings.Join(mistake.Names(), ", ") + `. Join names with "+" to chain them.`,
		Example: `  corpusprep mistake --probability 0.3 "The quick brown fox."
  corpusprep mistake --mistaker merge+case --seed 7 < chunks.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("mistaker") {
				name = strings.Join(a.cfg.Mistakers, "+")
			}
			if !flags.Changed("probability") {
				probability = a.cfg.ErrorProbability
			}
			if !flags.Changed("seed") {
				seed = a.cfg.Seed
			}

			m, err := mistake.New(name, mistake.WithProbability(probability), mistake.WithPalette(a.cfg.Palette))
			if err != nil {
				return err
			}
			rng := mistake.NewRand(seed)
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				_, err := fmt.Fprintln(out, m.MakeMistake(rng, strings.Join(args, " ")))
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
			for scanner.Scan() {
				if _, err := fmt.Fprintln(out, m.MakeMistake(rng, scanner.Text())); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	f := cmd.Flags()
	f.StringVarP(&name, "mistaker", "m", "typo", "mistaker name (default from config)")
	f.Float64VarP(&probability, "probability", "p", mistake.DefaultProbability, "error probability per unit")
	f.Uint64Var(&seed, "seed", 0, "random seed (default from config)")

	return cmd
}
