package connect4

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Render prints the board with colored pieces followed by the column indices.
func Render(out *termenv.Output, s State) error {
	x := out.String("X").Foreground(out.Color("1")).Bold()
	o := out.String("O").Foreground(out.Color("3")).Bold()

	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		sb.WriteByte('|')
		for c := 0; c < Cols; c++ {
			switch s.grid[r][c] {
			case maxPiece:
				sb.WriteString(x.String())
			case minPiece:
				sb.WriteString(o.String())
			default:
				sb.WriteByte(' ')
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte(' ')
	for c := 0; c < Cols; c++ {
		fmt.Fprintf(&sb, "%d ", c)
	}
	sb.WriteByte('\n')

	_, err := fmt.Fprint(out, sb.String())
	return err
}
