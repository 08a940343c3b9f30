package searcher

import (
	"fmt"

	"connect4/game"
)

// Expectimax treats MaxPlayer as adversarial and MinPlayer as a uniformly
// random mover: a chance ply is worth the mean of its children.
type Expectimax struct {
	search
}

var _ Searcher = (*Expectimax)(nil)

func NewExpectimax(depth int, options ...Option) *Expectimax {
	return &Expectimax{search: newSearch(depth, options)}
}

func (e *Expectimax) Name() string {
	return ExpectimaxName
}

func (e *Expectimax) Search(state game.State) (Result, error) {
	return e.run(ExpectimaxName, state, e.root)
}

func (e *Expectimax) ChooseAction(state game.State) (game.Action, error) {
	return choose(e, state)
}

// root is the only ply that returns an action; a random mover has none to pick.
func (e *Expectimax) root(state game.State) (float64, game.Action, error) {
	if e.isLeaf(state, e.depth) {
		return e.leaf(state), nil, nil
	}
	if mover := state.Turn(); mover != game.MaxPlayer {
		return 0, nil, fmt.Errorf("%w: %s to move", ErrChanceRoot, mover)
	}
	return e.maxValue(state, e.depth)
}

func (e *Expectimax) value(state game.State, depth int) (float64, error) {
	if e.isLeaf(state, depth) {
		return e.leaf(state), nil
	}
	if state.Turn() == game.MaxPlayer {
		value, _, err := e.maxValue(state, depth)
		return value, err
	}
	return e.chanceValue(state, depth)
}

func (e *Expectimax) maxValue(state game.State, depth int) (float64, game.Action, error) {
	e.metrics.AddNode()

	actions, err := legalActions(state, game.MaxPlayer, depth)
	if err != nil {
		return 0, nil, err
	}

	best, bestIndex := worst(game.MaxPlayer), -1
	for i, action := range actions {
		value, err := e.value(state.Successor(game.MaxPlayer, action), depth-1)
		if err != nil {
			return 0, nil, err
		}
		if bestIndex < 0 || improves(game.MaxPlayer, value, best) {
			best, bestIndex = value, i
		}
	}
	return best, actions[bestIndex], nil
}

// chanceValue weighs every child by 1/n.
func (e *Expectimax) chanceValue(state game.State, depth int) (float64, error) {
	e.metrics.AddNode()

	mover := state.Turn()
	actions, err := legalActions(state, mover, depth)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, action := range actions {
		value, err := e.value(state.Successor(mover, action), depth-1)
		if err != nil {
			return 0, err
		}
		sum += value
	}
	return sum / float64(len(actions)), nil
}
