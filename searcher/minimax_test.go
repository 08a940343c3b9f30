package searcher

import (
	"math"
	"testing"

	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/stretchr/testify/require"
)

func TestMinimaxSearch(t *testing.T) {
	t.Run("picking the best of three leaves at depth 1", func(t *testing.T) {
		root := maxNode(leaves(3, 5, 1)...)

		got, err := NewMinimax(1).Search(root)

		require.NoError(t, err)
		require.Equal(t, 5.0, got.Value)
		require.Equal(t, mockAction(1), got.Action, "Should choose the action leading to 5")
	})

	t.Run("minimizing at the opponent ply", func(t *testing.T) {
		root := maxNode(
			minNode(leaves(2, 8)...), // A
			minNode(leaves(6, 6)...), // B
		)

		got, err := NewMinimax(2).Search(root)

		require.NoError(t, err)
		require.Equal(t, 6.0, got.Value, "max(min(2,8), min(6,6)) = 6")
		require.Equal(t, mockAction(1), got.Action, "Should choose B")
	})

	t.Run("minimizing at a min root", func(t *testing.T) {
		root := minNode(leaves(4, -2, 7)...)

		got, err := NewMinimax(1).Search(root)

		require.NoError(t, err)
		require.Equal(t, -2.0, got.Value)
		require.Equal(t, mockAction(1), got.Action)
	})

	t.Run("cutting at the horizon", func(t *testing.T) {
		horizon := maxNode(leaves(100)...)
		horizon.score = -1
		root := maxNode(horizon, leaf(0))

		got, err := NewMinimax(1).Search(root)

		require.NoError(t, err)
		require.Equal(t, 0.0, got.Value, "Interior node at depth 0 should be evaluated, not expanded")
		require.Equal(t, mockAction(1), got.Action)
	})

	t.Run("using the configured evaluation", func(t *testing.T) {
		root := maxNode(leaves(3, 5, 1)...)
		negated := func(s game.State) float64 { return -s.Score() }

		got, err := NewMinimax(1, WithEvaluationFn(negated)).Search(root)

		require.NoError(t, err)
		require.Equal(t, -1.0, got.Value)
		require.Equal(t, mockAction(2), got.Action)
	})

	t.Run("keeping a valid action when every child is -inf", func(t *testing.T) {
		root := maxNode(leaves(math.Inf(-1), math.Inf(-1))...)

		got, err := NewMinimax(1).Search(root)

		require.NoError(t, err)
		require.Equal(t, math.Inf(-1), got.Value)
		require.Equal(t, mockAction(0), got.Action, "Sentinel seed should never leave the action unset")
	})

	t.Run("counting nodes and leaves", func(t *testing.T) {
		root := maxNode(
			minNode(leaves(2, 8)...),
			minNode(leaves(6, 6)...),
		)
		collector := metrics.NewCollector()

		got, err := NewMinimax(2, WithMetrics(collector)).Search(root)

		require.NoError(t, err)
		require.Equal(t, MinimaxName, got.Metric.Algorithm)
		require.Equal(t, 2, got.Metric.Depth)
		require.Equal(t, 3, got.Metric.Nodes, "Root and both min plies should be expanded")
		require.Equal(t, 4, got.Metric.Leaves, "Every leaf should be evaluated")
		require.Equal(t, 0, got.Metric.Cutoffs)
	})
}

func TestMinimaxChooseAction(t *testing.T) {
	t.Run("returning the root action", func(t *testing.T) {
		root := maxNode(leaves(3, 5, 1)...)

		got, err := NewMinimax(1).ChooseAction(root)

		require.NoError(t, err)
		require.Equal(t, mockAction(1), got)
	})

	t.Run("rejecting depth zero", func(t *testing.T) {
		got, err := NewMinimax(0).ChooseAction(maxNode(leaves(1)...))

		require.ErrorIs(t, err, ErrInvalidDepth)
		require.Nil(t, got)
	})

	t.Run("rejecting a terminal root", func(t *testing.T) {
		got, err := NewMinimax(3).ChooseAction(leaf(1))

		require.ErrorIs(t, err, ErrNoAction)
		require.Nil(t, got)
	})

	t.Run("reporting a broken game model", func(t *testing.T) {
		root := maxNode(leaf(1), minNode(leaf(2), stuck(game.MaxPlayer)))

		got, err := NewMinimax(3).ChooseAction(root)

		require.ErrorIs(t, err, ErrNoLegalActions)
		require.ErrorContains(t, err, "max to move with 1 plies left")
		require.Nil(t, got, "No partial result should be returned")
	})
}
