package tictactoe

import "github.com/rocketscienceinc/tictactoe-solo/internal/entity"

type Orientation string

const (
	Horizontal   Orientation = "horizontal"
	Vertical     Orientation = "vertical"
	DiagonalMain Orientation = "diagonal-main"
	DiagonalAnti Orientation = "diagonal-anti"
)

// Line is a winning line as the presentation layer draws it.
type Line struct {
	Cells       [3]int      `json:"cells"`
	Orientation Orientation `json:"orientation"`
}

// WinningLine returns the first line whose three cells hold the same mark.
func WinningLine(board entity.Board) (Line, bool) {
	for _, cells := range entity.WinLines {
		a, b, c := board[cells[0]], board[cells[1]], board[cells[2]]
		if a != entity.Empty && a == b && b == c {
			return Line{Cells: cells, Orientation: orientationOf(cells)}, true
		}
	}

	return Line{}, false
}

func orientationOf(cells [3]int) Orientation {
	a, b, c := cells[0], cells[1], cells[2]

	switch {
	case a/3 == b/3 && b/3 == c/3:
		return Horizontal
	case a%3 == b%3 && b%3 == c%3:
		return Vertical
	case a == 0 && c == 8:
		return DiagonalMain
	default:
		return DiagonalAnti
	}
}
