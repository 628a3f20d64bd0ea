package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"supergame/experiments"
	"supergame/strategy"
)

func newSimulateCommand(a *app) *cobra.Command {
	var (
		cfg     experiments.SessionConfig
		own     string
		seed    uint64
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Write a synthetic observation table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if own != "" {
				s, err := strategy.Standard().Lookup(own)
				if err != nil {
					return err
				}
				cfg.Strategy = &s
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}

			subjects, err := experiments.Generate(rand.New(rand.NewSource(seed)), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outFile, err)
				}
				defer f.Close()
				out = f
			}
			if err := experiments.WriteSubjects(out, subjects); err != nil {
				return err
			}
			log.Info().Msgf("generated %d subjects with seed %d", len(subjects), seed)
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Subjects, "subjects", 20, "number of subjects")
	cmd.Flags().IntVar(&cfg.Supergames, "supergames", 5, "supergames per subject")
	cmd.Flags().Float64Var(&cfg.Continuation, "continuation", 0.75, "probability a supergame continues after each round")
	cmd.Flags().Float64Var(&cfg.Cooperation, "cooperation", 0.5, "probability the opponent cooperates")
	cmd.Flags().Float64Var(&cfg.Missing, "missing", 0.05, "probability a round is unobserved")
	cmd.Flags().StringVar(&own, "strategy", "", "strategy that generates the subjects' own play")
	cmd.Flags().Float64Var(&cfg.Tremble, "tremble", 0.05, "probability an own decision is flipped")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default from STRATEGIES_SEED)")
	cmd.Flags().StringVar(&outFile, "out", "", "output file (default: stdout)")
	return cmd
}
