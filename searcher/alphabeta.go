package searcher

import (
	"math"

	"connect4/game"
)

// AlphaBeta returns the same action and value as Minimax while skipping the
// siblings that cannot change the decision.
type AlphaBeta struct {
	search
}

var _ Searcher = (*AlphaBeta)(nil)

func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	return &AlphaBeta{search: newSearch(depth, options)}
}

func (a *AlphaBeta) Name() string {
	return AlphaBetaName
}

func (a *AlphaBeta) Search(state game.State) (Result, error) {
	return a.run(AlphaBetaName, state, a.root)
}

func (a *AlphaBeta) ChooseAction(state game.State) (game.Action, error) {
	return choose(a, state)
}

// root enumerates the children itself to remember which action produced the
// best value. It never prunes, but tightens its own bound left to right so
// later children are searched with a narrower window.
func (a *AlphaBeta) root(state game.State) (float64, game.Action, error) {
	if a.isLeaf(state, a.depth) {
		return a.leaf(state), nil, nil
	}
	a.metrics.AddNode()

	mover := state.Turn()
	actions, err := legalActions(state, mover, a.depth)
	if err != nil {
		return 0, nil, err
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	best, bestIndex := worst(mover), -1
	for i, action := range actions {
		value, err := a.value(state.Successor(mover, action), a.depth-1, alpha, beta)
		if err != nil {
			return 0, nil, err
		}
		if bestIndex < 0 || improves(mover, value, best) {
			best, bestIndex = value, i
		}
		if mover == game.MaxPlayer {
			alpha = math.Max(alpha, best)
		} else {
			beta = math.Min(beta, best)
		}
	}
	return best, actions[bestIndex], nil
}

// value is fail-soft: a result inside [alpha, beta] is exact, one above beta is
// a lower bound and one below alpha an upper bound.
func (a *AlphaBeta) value(state game.State, depth int, alpha, beta float64) (float64, error) {
	if a.isLeaf(state, depth) {
		return a.leaf(state), nil
	}
	a.metrics.AddNode()

	mover := state.Turn()
	actions, err := legalActions(state, mover, depth)
	if err != nil {
		return 0, err
	}

	if mover == game.MaxPlayer {
		best := math.Inf(-1)
		for _, action := range actions {
			value, err := a.value(state.Successor(mover, action), depth-1, alpha, beta)
			if err != nil {
				return 0, err
			}
			best = math.Max(best, value)
			if best > beta {
				a.metrics.AddCutoff()
				return best, nil
			}
			alpha = math.Max(alpha, best)
		}
		return best, nil
	}

	best := math.Inf(1)
	for _, action := range actions {
		value, err := a.value(state.Successor(mover, action), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = math.Min(best, value)
		if best < alpha {
			a.metrics.AddCutoff()
			return best, nil
		}
		beta = math.Min(beta, best)
	}
	return best, nil
}
