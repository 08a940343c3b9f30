package connect4

import (
	"connect4/game"
)

const (
	Rows    = 6
	Cols    = 7
	Connect = 4
)

type cell int8

const (
	empty cell = iota
	maxPiece
	minPiece
)

func pieceOf(p game.Player) cell {
	if p == game.MaxPlayer {
		return maxPiece
	}
	return minPiece
}

func (c cell) owner() game.Player {
	if c == maxPiece {
		return game.MaxPlayer
	}
	return game.MinPlayer
}

func (c cell) rune() rune {
	switch c {
	case maxPiece:
		return 'X'
	case minPiece:
		return 'O'
	default:
		return '.'
	}
}

// board is indexed [row][col] with row 0 at the top, the way it is printed.
type board [Rows][Cols]cell

// directions of a line through a cell: horizontal, vertical and both diagonals
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

func inside(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// drop returns the row the piece lands on, or -1 if the column is full.
func (b *board) drop(col int, c cell) int {
	for row := Rows - 1; row >= 0; row-- {
		if b[row][col] == empty {
			b[row][col] = c
			return row
		}
	}
	return -1
}

// landing returns the row a piece dropped in col would occupy, or -1 if full.
func (b *board) landing(col int) int {
	for row := Rows - 1; row >= 0; row-- {
		if b[row][col] == empty {
			return row
		}
	}
	return -1
}

// connects reports whether the piece at (row, col) is part of a line of Connect.
func (b *board) connects(row, col int) bool {
	c := b[row][col]
	if c == empty {
		return false
	}
	for _, d := range directions {
		count := 1
		for _, sign := range [2]int{1, -1} {
			r, k := row+sign*d[0], col+sign*d[1]
			for inside(r, k) && b[r][k] == c {
				count++
				r, k = r+sign*d[0], k+sign*d[1]
			}
		}
		if count >= Connect {
			return true
		}
	}
	return false
}

// winner scans the whole board, used when a position is not built move by move.
func (b *board) winner() cell {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.connects(row, col) {
				return b[row][col]
			}
		}
	}
	return empty
}

// window is a line of Connect cells, identified by its start and direction.
type window struct {
	row, col int
	dir      [2]int
}

// windows lists every line of Connect cells that fits on the board.
var windows = func() []window {
	var all []window
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			for _, d := range directions {
				endRow, endCol := row+d[0]*(Connect-1), col+d[1]*(Connect-1)
				if inside(endRow, endCol) {
					all = append(all, window{row: row, col: col, dir: d})
				}
			}
		}
	}
	return all
}()

// count returns how many pieces of each side the window holds, and the cells left empty.
func (b *board) count(w window) (maxCount, minCount int, open [][2]int) {
	for i := 0; i < Connect; i++ {
		r, k := w.row+i*w.dir[0], w.col+i*w.dir[1]
		switch b[r][k] {
		case maxPiece:
			maxCount++
		case minPiece:
			minCount++
		default:
			open = append(open, [2]int{r, k})
		}
	}
	return maxCount, minCount, open
}
