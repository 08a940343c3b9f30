package connect4

import (
	"connect4/game"
)

// WinScore dwarfs any heuristic value so decided positions always dominate.
const WinScore = 1_000_000.0

const (
	twoWeight    = 2.0
	threeWeight  = 5.0
	threatWeight = 50.0 // three in a window whose last cell is playable right now
)

// centerWeights favor pieces that take part in the most windows
var centerWeights = [Cols]float64{0, 1, 2, 4, 2, 1, 0}

// Registrar is the part of an evaluation registry the model needs.
type Registrar interface {
	Register(name string, evaluate game.Evaluate) error
}

// RegisterEvaluations adds the Connect Four heuristics to r.
func RegisterEvaluations(r Registrar) error {
	evaluations := []struct {
		name     string
		evaluate game.Evaluate
	}{
		{"threats", EvaluateThreats},
		{"center", EvaluateCenter},
		{"threats_center", EvaluateThreatsCenter},
	}
	for _, e := range evaluations {
		if err := r.Register(e.name, e.evaluate); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateThreats counts open windows like Score, but rewards threes that can be
// completed on the next move far more than threes that still need support.
func EvaluateThreats(s game.State) float64 {
	cs := mustState(s)
	if decided, ok := cs.decided(); ok {
		return decided
	}
	score := 0.0
	for _, w := range windows {
		maxCount, minCount, open := cs.grid.count(w)
		switch {
		case minCount == 0 && maxCount > 0:
			score += cs.threatValue(maxCount, open)
		case maxCount == 0 && minCount > 0:
			score -= cs.threatValue(minCount, open)
		}
	}
	return score
}

// EvaluateCenter rewards control of the middle columns.
func EvaluateCenter(s game.State) float64 {
	cs := mustState(s)
	if decided, ok := cs.decided(); ok {
		return decided
	}
	score := 0.0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			switch cs.grid[r][c] {
			case maxPiece:
				score += centerWeights[c]
			case minPiece:
				score -= centerWeights[c]
			}
		}
	}
	return score
}

func EvaluateThreatsCenter(s game.State) float64 {
	cs := mustState(s)
	if decided, ok := cs.decided(); ok {
		return decided
	}
	return EvaluateThreats(cs) + EvaluateCenter(cs)
}

func (s State) threatValue(count int, open [][2]int) float64 {
	switch count {
	case 2:
		return twoWeight
	case 3:
		cell := open[0]
		if s.grid.landing(cell[1]) == cell[0] {
			return threatWeight
		}
		return threeWeight
	}
	return 0
}

// windowBalance sums the open windows of MaxPlayer minus those of MinPlayer.
func windowBalance(b *board) float64 {
	score := 0.0
	for _, w := range windows {
		maxCount, minCount, _ := b.count(w)
		switch {
		case minCount == 0:
			score += windowValue(maxCount)
		case maxCount == 0:
			score -= windowValue(minCount)
		}
	}
	return score
}

func windowValue(count int) float64 {
	switch count {
	case 2:
		return twoWeight
	case 3:
		return threeWeight
	}
	return 0
}

func mustState(s game.State) State {
	switch cs := s.(type) {
	case State:
		return cs
	case *State:
		return *cs
	default:
		panic("unexpected state type")
	}
}
