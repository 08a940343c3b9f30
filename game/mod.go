package game

// Player identifies the side to move. There are exactly two players: the one the
// search optimizes for and its opponent (adversarial or stochastic, depending on
// the searcher).
type Player int

const (
	MaxPlayer Player = iota
	MinPlayer
)

func (p Player) Opponent() Player {
	if p == MaxPlayer {
		return MinPlayer
	}
	return MaxPlayer
}

func (p Player) String() string {
	switch p {
	case MaxPlayer:
		return "max"
	case MinPlayer:
		return "min"
	default:
		return "unknown"
	}
}

// Action is an opaque move identifier. Equality is defined by the game model, so
// concrete actions should be comparable values.
type Action interface{}

// State should be immutable - operations on State always return a new copy
type State interface {
	// Turn returns the player to move in this state.
	Turn() Player
	// LegalActions returns the legal actions of player in a deterministic order.
	LegalActions(player Player) []Action
	// Successor returns the state after player plays action, with the turn
	// already advanced. The receiver is left untouched.
	Successor(player Player, action Action) State
	// IsTerminal reports whether the game is decided or no moves remain.
	IsTerminal() bool
	// Score is the model's own static score, larger values favor MaxPlayer.
	Score() float64
}

// Evaluates the game state to a score oriented so that larger values favor
// MaxPlayer.
type Evaluate func(State) float64

// Score is the default evaluation: the game model's built-in score, unmodified.
func Score(s State) float64 {
	return s.Score()
}
