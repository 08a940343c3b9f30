package searcher

import (
	"errors"
	"fmt"
	"math"

	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
)

const (
	MinimaxName    = "minimax"
	AlphaBetaName  = "alphabeta"
	ExpectimaxName = "expectimax"
)

var (
	// ErrInvalidDepth is returned when the configured depth cannot serve the call.
	ErrInvalidDepth = errors.New("invalid search depth")
	// ErrNoLegalActions means the game model reported a non-terminal state
	// without legal actions for the player to move.
	ErrNoLegalActions = errors.New("non-terminal state has no legal actions")
	// ErrNoAction is returned when the root is terminal, so there is nothing to play.
	ErrNoAction = errors.New("no action available at a terminal state")
	// ErrChanceRoot is returned by expectimax when the stochastic player is to move.
	ErrChanceRoot = errors.New("expectimax root must be a max ply")
)

// Searcher selects an action for the player to move by depth-limited tree search.
type Searcher interface {
	Name() string
	Depth() int
	// Search returns the root value and the action chosen at the root. With a
	// depth of zero or a terminal root, Action is nil and Value is the evaluation
	// of the root.
	Search(state game.State) (Result, error)
	// ChooseAction is Search for callers that need a move: it requires at least
	// one ply and fails rather than return a nil action.
	ChooseAction(state game.State) (game.Action, error)
}

type Result struct {
	Value  float64
	Action game.Action
	Metric metrics.SearchMetric
}

type Option func(s *search)

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *search) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *search) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// search holds the two parameters fixed for every call, plus where to report counts.
type search struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func newSearch(depth int, options []Option) search {
	s := search{ // Default values
		depth:    depth,
		evaluate: game.Score,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *search) Depth() int {
	return s.depth
}

func (s *search) checkDepth(algorithm string) error {
	if s.depth < 0 {
		return fmt.Errorf("%w: %s depth %d is negative", ErrInvalidDepth, algorithm, s.depth)
	}
	return nil
}

// leaf scores a state at the search horizon or at the end of the game.
func (s *search) leaf(state game.State) float64 {
	s.metrics.AddLeaf()
	return s.evaluate(state)
}

func (s *search) isLeaf(state game.State, depth int) bool {
	return depth == 0 || state.IsTerminal()
}

// run wraps a root computation with metric collection and logging.
func (s *search) run(algorithm string, state game.State, root func(game.State) (float64, game.Action, error)) (Result, error) {
	if err := s.checkDepth(algorithm); err != nil {
		return Result{}, err
	}

	s.metrics.Start(algorithm, s.depth)
	value, action, err := root(state)
	metric := s.metrics.Complete()
	if err != nil {
		return Result{}, err
	}

	log.Debug().
		Str("algorithm", algorithm).
		Int("depth", s.depth).
		Float64("value", value).
		Int("nodes", metric.Nodes).
		Int("leaves", metric.Leaves).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return Result{Value: value, Action: action, Metric: metric}, nil
}

// choose turns a root search into a move, refusing to return a nil action.
func choose(searcher Searcher, state game.State) (game.Action, error) {
	if searcher.Depth() < 1 {
		return nil, fmt.Errorf("%w: %s needs at least one ply, got %d", ErrInvalidDepth, searcher.Name(), searcher.Depth())
	}
	result, err := searcher.Search(state)
	if err != nil {
		return nil, err
	}
	if result.Action == nil {
		return nil, ErrNoAction
	}
	return result.Action, nil
}

func legalActions(state game.State, mover game.Player, depth int) ([]game.Action, error) {
	actions := state.LegalActions(mover)
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: %s to move with %d plies left", ErrNoLegalActions, mover, depth)
	}
	return actions, nil
}

// worst is the comparison seed for mover: it never survives as a chosen value
// unless a child really evaluates to it.
func worst(mover game.Player) float64 {
	if mover == game.MaxPlayer {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// improves reports whether value strictly beats best for mover. Equal values
// never replace best, so the first action seen wins ties.
func improves(mover game.Player, value, best float64) bool {
	if mover == game.MaxPlayer {
		return value > best
	}
	return value < best
}
