package board

import "errors"

// StartingSize is the edge length of a fresh board. The board grows by one
// row and one column every time a line of five is completed, and only an
// explicit reset brings it back to this size.
const StartingSize = 15

const (
	EmptyCell  = 0
	PlayerOne  = 1
	PlayerTwo  = 2
	winningRun = 5
)

var (
	ErrOutOfBounds  = errors.New("position is out of board bounds")
	ErrCellOccupied = errors.New("cell is already occupied")

	// Axis scan order is fixed: vertical, horizontal, down-right diagonal,
	// down-left diagonal. When a single placement completes lines on two
	// axes at once, only the first-scanned axis is reported.
	axes = [4][2]int{
		{1, 0},
		{0, 1},
		{1, 1},
		{1, -1},
	}
)

// Board is an NxN grid of cells holding EmptyCell or a player stone value.
type Board [][]int

// Position is a single grid coordinate, serialized as a [row, col] pair.
type Position [2]int

// New returns an empty size x size board.
func New(size int) Board {
	grid := make(Board, size)
	for i := range grid {
		grid[i] = make([]int, size)
	}

	return grid
}

// Size returns the current edge length of the board.
func (that Board) Size() int {
	return len(that)
}

// Clone returns a deep copy of the board.
func (that Board) Clone() Board {
	grid := make(Board, len(that))
	for i, row := range that {
		grid[i] = make([]int, len(row))
		copy(grid[i], row)
	}

	return grid
}

// Place puts a stone on the board and evaluates win detection from the
// placed cell outward. It returns the winning line if the placement
// completes a run of five or more, or nil if the game continues.
func (that Board) Place(row, col, stone int) ([]Position, error) {
	size := that.Size()

	if row < 0 || row >= size || col < 0 || col >= size {
		return nil, ErrOutOfBounds
	}

	if that[row][col] != EmptyCell {
		return nil, ErrCellOccupied
	}

	that[row][col] = stone

	return DetectWin(that, row, col, stone), nil
}

// DetectWin scans the four axes through (row, col) in both directions,
// counting contiguous cells holding the given stone. It returns the line of
// the first axis whose run reaches five, starting with the placed cell
// followed by the forward and then the backward extension, or nil when no
// axis qualifies.
func DetectWin(grid Board, row, col, stone int) []Position {
	size := grid.Size()

	for _, axis := range axes {
		dx, dy := axis[0], axis[1]
		positions := []Position{{row, col}}

		x, y := row+dx, col+dy
		for x >= 0 && x < size && y >= 0 && y < size && grid[x][y] == stone {
			positions = append(positions, Position{x, y})
			x += dx
			y += dy
		}

		x, y = row-dx, col-dy
		for x >= 0 && x < size && y >= 0 && y < size && grid[x][y] == stone {
			positions = append(positions, Position{x, y})
			x -= dx
			y -= dy
		}

		if len(positions) >= winningRun {
			return positions
		}
	}

	return nil
}

// Expand returns a board one row and one column larger, with the existing
// contents copied into the top-left corner and the new cells empty.
func (that Board) Expand() Board {
	grid := New(that.Size() + 1)
	for i, row := range that {
		copy(grid[i], row)
	}

	return grid
}
