package agent

import (
	"time"

	"connect4/config"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

// Picker chooses a move without tree search.
type Picker func(state game.State, rng *rand.Rand) (game.Action, error)

type bestAgent struct {
	pick Picker
	rng  *rand.Rand
}

// NewBestAgent returns an agent that delegates to a one-ply baseline such as
// connect4.PickBestMove.
func NewBestAgent(pick Picker, rng *rand.Rand) Agent {
	return bestAgent{pick: pick, rng: rng}
}

func (a bestAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	start := time.Now()
	action, err := a.pick(state, a.rng)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	return action, metrics.SearchMetric{Algorithm: config.BestAlgorithm, Depth: 1, Duration: time.Since(start)}, nil
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly at random, the opponent
// expectimax assumes.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	start := time.Now()
	if state.IsTerminal() {
		return nil, metrics.SearchMetric{}, searcher.ErrNoAction
	}
	actions := state.LegalActions(state.Turn())
	if len(actions) == 0 {
		return nil, metrics.SearchMetric{}, searcher.ErrNoLegalActions
	}
	action := actions[a.rng.Intn(len(actions))]
	return action, metrics.SearchMetric{Algorithm: config.RandomAlgorithm, Duration: time.Since(start)}, nil
}
