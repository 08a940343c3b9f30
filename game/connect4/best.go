package connect4

import (
	"errors"

	"connect4/game"

	"golang.org/x/exp/rand"
)

var ErrNoMoves = errors.New("no legal moves to play")

// PickBestMove plays the move whose resulting position has the best Score for
// the player to move, looking a single ply ahead. Ties are broken uniformly at
// random with rng.
func PickBestMove(s game.State, rng *rand.Rand) (game.Action, error) {
	cs := mustState(s)
	mover := cs.Turn()
	actions := cs.LegalActions(mover)
	if len(actions) == 0 {
		return nil, ErrNoMoves
	}

	sign := 1.0
	if mover == game.MinPlayer {
		sign = -1.0
	}

	var best []game.Action
	bestScore := 0.0
	for i, action := range actions {
		score := sign * cs.Play(mover, action).Score()
		switch {
		case i == 0 || score > bestScore:
			bestScore = score
			best = []game.Action{action}
		case score == bestScore:
			best = append(best, action)
		}
	}
	return best[rng.Intn(len(best))], nil
}
