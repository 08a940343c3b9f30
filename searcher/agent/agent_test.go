package agent

import (
	"testing"

	"connect4/config"
	"connect4/game"
	"connect4/game/connect4"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// openThree leaves X one drop away from four in a row in column 3.
func openThree(t *testing.T) connect4.State {
	t.Helper()
	s, err := connect4.FromRows(game.MaxPlayer,
		".......",
		".......",
		".......",
		".......",
		"....O..",
		"XXX.OO.",
	)
	require.NoError(t, err)
	return s
}

func newRegistry(t *testing.T) *searcher.Registry {
	t.Helper()
	r := searcher.NewRegistry()
	require.NoError(t, connect4.RegisterEvaluations(r))
	return r
}

func TestNew(t *testing.T) {
	registry := newRegistry(t)

	for _, algorithm := range []string{config.MinimaxAlgorithm, config.AlphaBetaAlgorithm, config.ExpectimaxAlgorithm} {
		t.Run(algorithm+" finds the winning drop", func(t *testing.T) {
			a, err := New(config.AgentConfig{ID: 1, Algorithm: algorithm, Depth: 2, Evaluation: "threats"}, registry)
			require.NoError(t, err)

			action, metric, err := a.FindMove(openThree(t))

			require.NoError(t, err)
			require.Equal(t, connect4.Column(3), action)
			require.Equal(t, algorithm, metric.Algorithm)
			require.Equal(t, 2, metric.Depth)
			require.Positive(t, metric.Nodes, "Search metrics should be collected")
		})
	}

	t.Run("best finds the winning drop", func(t *testing.T) {
		a, err := New(config.AgentConfig{ID: 1, Algorithm: config.BestAlgorithm}, registry)
		require.NoError(t, err)

		action, metric, err := a.FindMove(openThree(t))

		require.NoError(t, err)
		require.Equal(t, connect4.Column(3), action)
		require.Equal(t, config.BestAlgorithm, metric.Algorithm)
	})

	t.Run("random is reproducible from its seed", func(t *testing.T) {
		cfg := config.AgentConfig{ID: 1, Algorithm: config.RandomAlgorithm, Seed: 5}
		first, err := New(cfg, registry)
		require.NoError(t, err)
		second, err := New(cfg, registry)
		require.NoError(t, err)

		s := connect4.New(game.MaxPlayer)
		for i := 0; i < 10; i++ {
			a1, _, err := first.FindMove(s)
			require.NoError(t, err)
			a2, _, err := second.FindMove(s)
			require.NoError(t, err)
			require.Equal(t, a1, a2)
		}
	})

	t.Run("rejecting an unknown evaluation", func(t *testing.T) {
		_, err := New(config.AgentConfig{ID: 7, Algorithm: config.MinimaxAlgorithm, Depth: 2, Evaluation: "material"}, registry)

		require.ErrorIs(t, err, searcher.ErrUnknownEvaluation)
		require.ErrorContains(t, err, "agent 7")
	})

	t.Run("rejecting an invalid config", func(t *testing.T) {
		_, err := New(config.AgentConfig{ID: 1, Algorithm: config.AlphaBetaAlgorithm, Depth: -1, Evaluation: "score"}, registry)
		require.ErrorIs(t, err, config.ErrInvalidConfig)

		_, err = New(config.AgentConfig{ID: 1, Algorithm: "mcts"}, registry)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestSearchAgent(t *testing.T) {
	t.Run("refusing a terminal state", func(t *testing.T) {
		won := openThree(t).Play(game.MaxPlayer, connect4.Column(3))

		action, _, err := NewSearchAgent(searcher.NewAlphaBeta(3)).FindMove(won)

		require.ErrorIs(t, err, searcher.ErrNoAction)
		require.Nil(t, action)
	})

	t.Run("propagating search errors", func(t *testing.T) {
		action, _, err := NewSearchAgent(searcher.NewExpectimax(2)).FindMove(connect4.New(game.MinPlayer))

		require.ErrorIs(t, err, searcher.ErrChanceRoot)
		require.Nil(t, action)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("playing only legal columns", func(t *testing.T) {
		s, err := connect4.FromRows(game.MinPlayer,
			"X.XOX.O",
			"O.OXO.X",
			"X.XOX.O",
			"O.OXO.X",
			"X.XOX.O",
			"O.OXO.X",
		)
		require.NoError(t, err)
		a := NewRandomAgent(rand.New(rand.NewSource(3)))

		seen := map[game.Action]bool{}
		for i := 0; i < 50; i++ {
			action, _, err := a.FindMove(s)
			require.NoError(t, err)
			seen[action] = true
		}

		require.Equal(t, map[game.Action]bool{connect4.Column(1): true, connect4.Column(5): true}, seen)
	})

	t.Run("refusing a terminal state", func(t *testing.T) {
		won := openThree(t).Play(game.MaxPlayer, connect4.Column(3))

		_, _, err := NewRandomAgent(rand.New(rand.NewSource(1))).FindMove(won)

		require.ErrorIs(t, err, searcher.ErrNoAction)
	})
}
