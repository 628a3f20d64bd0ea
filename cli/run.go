package cli

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"supergame/experiments"
	"supergame/strategy"
)

func newRunCommand(a *app) *cobra.Command {
	var (
		input        string
		output       string
		name         string
		goroutines   int
		strategies   []string
		skipFailures bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every strategy for every subject in an observation table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer f.Close()

			subjects, err := experiments.LoadSubjects(f)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", input, err)
			}
			log.Info().Msgf("loaded %d subjects from %s", len(subjects), input)

			if goroutines <= 0 {
				goroutines = a.cfg.Goroutines
			}
			if output == "" {
				output = a.cfg.OutputDir
			}
			options := []experiments.Option{
				experiments.WithGoroutines(goroutines),
				experiments.WithStrategies(strategies...),
				experiments.WithMetrics(),
			}
			if skipFailures || a.cfg.SkipFailures {
				options = append(options, experiments.WithSkipFailures())
			}

			runner, err := experiments.NewRunner(strategy.Standard(), options...)
			if err != nil {
				return err
			}
			result, err := runner.Run(cmd.Context(), subjects)
			if err != nil {
				return err
			}

			dir, err := experiments.Store(output, name, result)
			if err != nil {
				return err
			}

			best := result.BestFit()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SUBJECT\tBEST FIT\tAGREEMENT")
			for _, evaluation := range result.Evaluations {
				id := evaluation.Subject.ID
				bestName, ok := best[id]
				if !ok {
					fmt.Fprintf(w, "%s\t-\t-\n", id)
					continue
				}
				j := slices.Index(result.Strategies, bestName)
				fmt.Fprintf(w, "%s\t%s\t%.3f\n", id, bestName, evaluation.Fits[j].Rate())
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "records written to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "CSV with subject, period, action and optional own columns")
	cmd.Flags().StringVar(&output, "output", "", "directory for records (default from STRATEGIES_OUTPUT_DIR)")
	cmd.Flags().StringVar(&name, "name", "run", "name of the run, used as a subdirectory")
	cmd.Flags().IntVar(&goroutines, "goroutines", 0, "parallel evaluations (default from STRATEGIES_GOROUTINES)")
	cmd.Flags().StringSliceVar(&strategies, "strategy", nil, "strategies to evaluate (default: all)")
	cmd.Flags().BoolVar(&skipFailures, "skip-failures", false, "skip malformed subjects instead of failing")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
