package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"supergame/config"
)

type app struct {
	cfg      config.Config
	logLevel string
}

func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "strategies",
		Short:        "Predict canonical repeated-game strategies against observed play",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := cfg.LogLevel
			if a.logLevel != "" {
				level = a.logLevel
			}
			return setupLogging(cmd.ErrOrStderr(), level)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides "+config.Prefix+"LOG_LEVEL")

	root.AddCommand(
		newListCommand(),
		newEvalCommand(),
		newRunCommand(a),
		newSimulateCommand(a),
	)
	return root
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly})
	return nil
}
