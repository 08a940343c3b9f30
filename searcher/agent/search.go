package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the root action of every search.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	result, err := a.searcher.Search(state)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	if result.Action == nil {
		return nil, result.Metric, searcher.ErrNoAction
	}
	return result.Action, result.Metric, nil
}
