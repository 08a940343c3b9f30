package engine

import (
	"fmt"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher/agent"
	"connect4/utils"

	"github.com/rs/zerolog/log"
)

// Observer is told about every move right after it was played.
type Observer func(move metrics.MoveMetric, state game.State)

type Local struct {
	state    game.State
	agents   map[game.Player]agent.Agent
	maxMoves int
	observe  Observer
}

var _ Engine = (*Local)(nil)

type Option func(e *Local)

func WithObserver(observe Observer) Option {
	return func(e *Local) {
		if observe != nil {
			e.observe = observe
		}
	}
}

func WithMaxMoves(maxMoves int) Option {
	return func(e *Local) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

// NewLocal sets up a game from initial in which agents[0] plays MaxPlayer and
// agents[1] plays MinPlayer. The player to move in initial starts.
func NewLocal(agents [2]agent.Agent, initial game.State, options ...Option) *Local {
	e := &Local{ // Default values
		state: initial,
		agents: map[game.Player]agent.Agent{
			game.MaxPlayer: agents[0],
			game.MinPlayer: agents[1],
		},
		maxMoves: MaxMoves,
		observe:  func(metrics.MoveMetric, game.State) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns the current position.
func (e *Local) State() game.State {
	return e.state
}

// Run executes the entire game loop. Every action is checked against the legal
// actions of the player to move; an illegal one ends the game with an error.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.state.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s player is starting", gameMetric.StartingPlayer)

	for step := 1; !e.state.IsTerminal() && step <= e.maxMoves; step++ {
		player := e.state.Turn()

		action, searchMetric, err := e.agents[player].FindMove(e.state)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("%s player at move %d: %w", player, step, err)
		}

		legal := e.state.LegalActions(player)
		if !utils.Contains(legal, action) {
			log.Warn().Msgf("%s player chose %v, legal actions are %v", player, action, legal)
			return gameMetric, moveMetrics, fmt.Errorf("%w: %s player chose %v at move %d", ErrIllegalAction, player, action, step)
		}

		e.state = e.state.Successor(player, action)

		move := metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Action:       action,
			SearchMetric: searchMetric,
		}
		moveMetrics = append(moveMetrics, move)
		e.observe(move, e.state)

		log.Debug().Msgf("move %d: %s player played %v", step, player, action)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = Outcome(e.state)

	log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, gameMetric.Winner)

	return gameMetric, moveMetrics, nil
}

// Outcome reads the result of a game from the sign of the model's own score.
func Outcome(state game.State) string {
	if !state.IsTerminal() {
		return metrics.Unfinished
	}
	switch score := state.Score(); {
	case score > 0:
		return metrics.MaxWins
	case score < 0:
		return metrics.MinWins
	default:
		return metrics.Draw
	}
}
