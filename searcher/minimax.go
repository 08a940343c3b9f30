package searcher

import (
	"connect4/game"
)

// Minimax explores every line to the configured depth. MaxPlayer takes the
// greatest child value, MinPlayer the smallest.
type Minimax struct {
	search
}

var _ Searcher = (*Minimax)(nil)

func NewMinimax(depth int, options ...Option) *Minimax {
	return &Minimax{search: newSearch(depth, options)}
}

func (m *Minimax) Name() string {
	return MinimaxName
}

func (m *Minimax) Search(state game.State) (Result, error) {
	return m.run(MinimaxName, state, func(root game.State) (float64, game.Action, error) {
		return m.value(root, m.depth)
	})
}

func (m *Minimax) ChooseAction(state game.State) (game.Action, error) {
	return choose(m, state)
}

func (m *Minimax) value(state game.State, depth int) (float64, game.Action, error) {
	if m.isLeaf(state, depth) {
		return m.leaf(state), nil, nil
	}
	m.metrics.AddNode()

	mover := state.Turn()
	actions, err := legalActions(state, mover, depth)
	if err != nil {
		return 0, nil, err
	}

	best, bestIndex := worst(mover), -1
	for i, action := range actions {
		value, _, err := m.value(state.Successor(mover, action), depth-1)
		if err != nil {
			return 0, nil, err
		}
		if bestIndex < 0 || improves(mover, value, best) {
			best, bestIndex = value, i
		}
	}
	return best, actions[bestIndex], nil
}
