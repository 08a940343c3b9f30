package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"connect4/config"
	"connect4/game/connect4"
	"connect4/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options shared by every command
type rootOptions struct {
	logLevel string
	seed     uint64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "connect4",
		Short: "Depth-limited minimax, alpha-beta and expectimax agents playing Connect Four",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts.logLevel)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel,
		"Log level: trace, debug, info, warn, error or disabled")
	rootCmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 1, "Seed of the agents' random sources")

	rootCmd.AddCommand(
		newPlayCmd(opts),
		newTournamentCmd(),
		newSweepCmd(opts),
		newBenchCmd(opts),
		newEvaluationsCmd(),
		newInitCmd(),
	)
	return rootCmd
}

func setupLogging(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	return nil
}

// newRegistry holds the default score and the Connect Four heuristics.
func newRegistry() (*searcher.Registry, error) {
	registry := searcher.NewRegistry()
	if err := connect4.RegisterEvaluations(registry); err != nil {
		return nil, err
	}
	return registry, nil
}
