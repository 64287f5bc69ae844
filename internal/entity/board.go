package entity

const BoardSize = 9

// WinLines - every row, column and diagonal of the board, in that order.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the cells in row-major order: row = index/3, col = index%3.
type Board [BoardSize]Mark

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Count returns how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

func (that Board) Strings() []string {
	cells := make([]string, len(that))
	for i, cell := range that {
		cells[i] = cell.String()
	}

	return cells
}

func InBounds(index int) bool {
	return index >= 0 && index < BoardSize
}
