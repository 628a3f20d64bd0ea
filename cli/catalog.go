package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"supergame/game"
	"supergame/strategy"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the strategy catalog in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tMEMORY\tOPENING\tDESCRIPTION")
			for i, s := range strategy.Standard().Strategies() {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", i+1, s.Name(), s.Memory(), game.FormatActions(s.Opening()), s.Description())
			}
			return w.Flush()
		},
	}
}

func newEvalCommand() *cobra.Command {
	var (
		actions    string
		periods    string
		strategies []string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Predict each strategy's play against one opponent sequence",
		Example: "  strategies eval --actions 1,1,0,0,1 --periods 1,2,3,1,2\n" +
			"  strategies eval --actions C,D,NA,C --strategy TFT --strategy GRIM",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opponent, err := game.ParseActions(actions)
			if err != nil {
				return err
			}

			var rounds []int
			if periods == "" {
				rounds = game.PeriodsFor(len(opponent))
			} else if rounds, err = game.ParsePeriods(periods); err != nil {
				return err
			}

			catalog := strategy.Standard()
			if len(strategies) > 0 {
				if catalog, err = catalog.Subset(strategies...); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "opponent\t%s\n", game.FormatActions(opponent))
			for _, name := range catalog.Names() {
				predicted, err := catalog.Evaluate(name, opponent, rounds)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", name, game.FormatActions(predicted))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&actions, "actions", "", "opponent actions: 1/0/NA or C/D/NA, comma separated")
	cmd.Flags().StringVar(&periods, "periods", "", "period markers, comma separated (default: one supergame)")
	cmd.Flags().StringSliceVar(&strategies, "strategy", nil, "strategies to evaluate (default: all)")
	_ = cmd.MarkFlagRequired("actions")
	return cmd
}
