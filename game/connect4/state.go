package connect4

import (
	"fmt"
	"strings"

	"connect4/game"
)

// Column is a Connect Four action: the index of the column to drop a piece in.
type Column int

// State is an immutable Connect Four position. Successor always returns a copy.
type State struct {
	grid   board
	turn   game.Player
	moves  int
	winner cell
}

var _ game.State = State{}

// New returns the empty board with first to move.
func New(first game.Player) State {
	return State{turn: first}
}

// FromRows parses a position printed top row first, using '.' for empty cells,
// 'X' for MaxPlayer pieces and 'O' for MinPlayer pieces.
func FromRows(turn game.Player, rows ...string) (State, error) {
	if len(rows) != Rows {
		return State{}, fmt.Errorf("expected %d rows, got %d", Rows, len(rows))
	}
	s := State{turn: turn}
	for r, line := range rows {
		if len(line) != Cols {
			return State{}, fmt.Errorf("row %d: expected %d columns, got %d", r, Cols, len(line))
		}
		for c, ch := range line {
			switch ch {
			case '.':
			case 'X', 'x':
				s.grid[r][c] = maxPiece
				s.moves++
			case 'O', 'o':
				s.grid[r][c] = minPiece
				s.moves++
			default:
				return State{}, fmt.Errorf("row %d col %d: unexpected cell %q", r, c, ch)
			}
		}
	}
	// Pieces must rest on the bottom or on another piece
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows-1; r++ {
			if s.grid[r][c] != empty && s.grid[r+1][c] == empty {
				return State{}, fmt.Errorf("col %d: floating piece at row %d", c, r)
			}
		}
	}
	s.winner = s.grid.winner()
	return s, nil
}

func (s State) Turn() game.Player {
	return s.turn
}

// LegalActions returns the non-full columns left to right, or none once the
// game is decided. Both players share the same legal columns.
func (s State) LegalActions(player game.Player) []game.Action {
	if s.winner != empty {
		return []game.Action{}
	}
	actions := make([]game.Action, 0, Cols)
	for c := 0; c < Cols; c++ {
		if s.grid[0][c] == empty {
			actions = append(actions, Column(c))
		}
	}
	return actions
}

func (s State) Successor(player game.Player, action game.Action) game.State {
	return s.Play(player, action)
}

// Play is Successor with the concrete return type.
func (s State) Play(player game.Player, action game.Action) State {
	col, ok := action.(Column)
	if !ok {
		panic(fmt.Sprintf("unexpected action type %T", action))
	}
	if player != s.turn {
		panic(fmt.Sprintf("player %s cannot move on %s's turn", player, s.turn))
	}
	if s.winner != empty {
		panic("game is over")
	}
	if col < 0 || int(col) >= Cols {
		panic(fmt.Sprintf("column %d out of range", col))
	}

	next := s // arrays are copied by value
	row := next.grid.drop(int(col), pieceOf(player))
	if row < 0 {
		panic(fmt.Sprintf("column %d is full", col))
	}
	next.moves++
	if next.grid.connects(row, int(col)) {
		next.winner = pieceOf(player)
	}
	next.turn = player.Opponent()
	return next
}

func (s State) IsTerminal() bool {
	return s.winner != empty || s.moves == Rows*Cols
}

// Winner returns the player with four in a row, if any.
func (s State) Winner() (game.Player, bool) {
	if s.winner == empty {
		return 0, false
	}
	return s.winner.owner(), true
}

// Moves returns the number of pieces on the board.
func (s State) Moves() int {
	return s.moves
}

// Score is WinScore for a MaxPlayer win, -WinScore for a MinPlayer win and the
// open window balance otherwise.
func (s State) Score() float64 {
	if decided, ok := s.decided(); ok {
		return decided
	}
	return windowBalance(&s.grid)
}

func (s State) decided() (float64, bool) {
	switch s.winner {
	case maxPiece:
		return WinScore, true
	case minPiece:
		return -WinScore, true
	}
	if s.moves == Rows*Cols {
		return 0, true
	}
	return 0, false
}

func (s State) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteRune(s.grid[r][c].rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
