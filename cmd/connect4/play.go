package main

import (
	"fmt"

	"connect4/config"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/game/connect4"
	"connect4/searcher/agent"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type playOptions struct {
	x, o       string
	depth      int
	evaluation string
	first      string
}

func newPlayCmd(root *rootOptions) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game between two agents and print every move",
		Long: `Play one game between two agents. X is MaxPlayer and O is MinPlayer.

Algorithms: minimax, alphabeta, expectimax (X only), best, random.

Examples:
  connect4 play --x alphabeta --o random --depth 4 --eval threats
  connect4 play --x expectimax --o alphabeta --first o`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.x, "x", config.AlphaBetaAlgorithm, "Algorithm playing X")
	cmd.Flags().StringVar(&opts.o, "o", config.RandomAlgorithm, "Algorithm playing O")
	cmd.Flags().IntVar(&opts.depth, "depth", config.DefaultDepth, "Search depth in plies")
	cmd.Flags().StringVar(&opts.evaluation, "eval", config.DefaultEvaluation, "Evaluation function, see 'connect4 evaluations'")
	cmd.Flags().StringVar(&opts.first, "first", "x", "Side moving first: x or o")
	return cmd
}

func runPlay(cmd *cobra.Command, root *rootOptions, opts *playOptions) error {
	first, err := parseSide(opts.first)
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Agents = []config.AgentConfig{
		{ID: 1, Algorithm: opts.x, Depth: opts.depth, Evaluation: opts.evaluation, Seed: root.seed},
		{ID: 2, Algorithm: opts.o, Depth: opts.depth, Evaluation: opts.evaluation, Seed: root.seed + 1},
	}
	cfg.Tournament.MatchUps = []config.MatchUp{{X: 1, O: 2}}
	if err := cfg.Validate(); err != nil {
		return err
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	var agents [2]agent.Agent
	for i, agentConfig := range cfg.Agents {
		if agents[i], err = agent.New(agentConfig, registry); err != nil {
			return err
		}
	}

	out := termenv.NewOutput(cmd.OutOrStdout())
	initial := connect4.New(first)
	if err := connect4.Render(out, initial); err != nil {
		return err
	}

	var renderErr error
	e := engine.NewLocal(agents, initial, engine.WithObserver(func(move metrics.MoveMetric, state game.State) {
		if renderErr != nil {
			return
		}
		fmt.Fprintf(out, "\nmove %d: %s drops in column %v (%s, %d nodes, %s)\n",
			move.Step, side(move.Player), move.Action, move.Algorithm, move.Nodes, move.Duration)
		renderErr = connect4.Render(out, state.(connect4.State))
	}))

	gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	if renderErr != nil {
		return renderErr
	}

	_, err = fmt.Fprintf(out, "\nresult: %s after %d moves\n", result(gameMetric.Winner), gameMetric.TotalMoves)
	return err
}

func parseSide(s string) (game.Player, error) {
	switch s {
	case "x", "X":
		return game.MaxPlayer, nil
	case "o", "O":
		return game.MinPlayer, nil
	}
	return 0, fmt.Errorf("unknown side %q, expected x or o", s)
}

func side(p game.Player) string {
	if p == game.MaxPlayer {
		return "X"
	}
	return "O"
}

func result(winner string) string {
	switch winner {
	case metrics.MaxWins:
		return "X wins"
	case metrics.MinWins:
		return "O wins"
	}
	return winner
}
