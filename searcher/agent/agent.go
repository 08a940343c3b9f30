package agent

import (
	"fmt"

	"connect4/config"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/game/connect4"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the action to play and the metrics of the search that chose it
	FindMove(state game.State) (game.Action, metrics.SearchMetric, error)
}

// New builds the agent described by cfg. Search agents resolve their evaluation
// in registry and own a fresh metrics collector, so an agent must not be shared
// between concurrent games.
func New(cfg config.AgentConfig, registry *searcher.Registry) (Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	switch cfg.Algorithm {
	case config.BestAlgorithm:
		return NewBestAgent(connect4.PickBestMove, rng), nil
	case config.RandomAlgorithm:
		return NewRandomAgent(rng), nil
	}

	evaluate, err := registry.Resolve(cfg.Evaluation)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", cfg.ID, err)
	}
	options := []searcher.Option{
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(metrics.NewCollector()),
	}

	var s searcher.Searcher
	switch cfg.Algorithm {
	case config.MinimaxAlgorithm:
		s = searcher.NewMinimax(cfg.Depth, options...)
	case config.AlphaBetaAlgorithm:
		s = searcher.NewAlphaBeta(cfg.Depth, options...)
	case config.ExpectimaxAlgorithm:
		s = searcher.NewExpectimax(cfg.Depth, options...)
	}
	return NewSearchAgent(s), nil
}
