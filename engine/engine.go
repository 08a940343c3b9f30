package engine

import (
	"errors"

	"connect4/experiments/metrics"
)

// MaxMoves bounds games whose model never reaches a terminal state.
const MaxMoves = 1000

var ErrIllegalAction = errors.New("illegal action")

type Engine interface {
	// Run plays a game till it is over or MaxMoves moves were played
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
