package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Returns an empty board of the requested size", func(t *testing.T) {
		// Given: the starting size
		// When: creating a new board
		grid := New(StartingSize)

		// Then: every cell is empty
		require.Equal(t, StartingSize, grid.Size())
		for _, row := range grid {
			require.Len(t, row, StartingSize)
			for _, cell := range row {
				assert.Equal(t, EmptyCell, cell)
			}
		}
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a stone on an empty cell", func(t *testing.T) {
		// Given: an empty board
		grid := New(StartingSize)

		// When: placing a stone
		winLine, err := grid.Place(7, 7, PlayerOne)

		// Then: the cell holds the stone and no win is reported
		require.NoError(t, err)
		assert.Nil(t, winLine)
		assert.Equal(t, PlayerOne, grid[7][7])
	})

	t.Run("Rejects a position outside the board", func(t *testing.T) {
		// Given: an empty board
		grid := New(StartingSize)

		// When: placing beyond the edge
		_, err := grid.Place(StartingSize, 0, PlayerOne)

		// Then: an ErrOutOfBounds error should be returned
		require.ErrorIs(t, err, ErrOutOfBounds)

		_, err = grid.Place(-1, 3, PlayerOne)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a board with a stone at (3, 3)
		grid := New(StartingSize)
		_, err := grid.Place(3, 3, PlayerOne)
		require.NoError(t, err)

		// When: the other player targets the same cell
		_, err = grid.Place(3, 3, PlayerTwo)

		// Then: an ErrCellOccupied error should be returned
		require.ErrorIs(t, err, ErrCellOccupied)
		assert.Equal(t, PlayerOne, grid[3][3])
	})
}

func TestDetectWin(t *testing.T) {
	t.Run("Detects a horizontal line of five", func(t *testing.T) {
		// Given: four player-one stones in a row
		grid := New(StartingSize)
		for col := 0; col < 4; col++ {
			grid[5][col] = PlayerOne
		}

		// When: placing the fifth stone
		winLine, err := grid.Place(5, 4, PlayerOne)

		// Then: the winning line has five positions including the placed one
		require.NoError(t, err)
		require.Len(t, winLine, 5)
		assert.Contains(t, winLine, Position{5, 4})
		for _, position := range winLine {
			assert.Equal(t, 5, position[0])
		}
	})

	t.Run("Detects a vertical line of five", func(t *testing.T) {
		// Given: four player-two stones in a column
		grid := New(StartingSize)
		for row := 1; row < 5; row++ {
			grid[row][8] = PlayerTwo
		}

		// When: placing the fifth stone above them
		winLine, err := grid.Place(0, 8, PlayerTwo)

		// Then: the winning line runs down column 8
		require.NoError(t, err)
		require.Len(t, winLine, 5)
		assert.Contains(t, winLine, Position{0, 8})
		for _, position := range winLine {
			assert.Equal(t, 8, position[1])
		}
	})

	t.Run("Detects a down-right diagonal completed in the middle", func(t *testing.T) {
		// Given: stones on both sides of a diagonal gap
		grid := New(StartingSize)
		grid[2][2] = PlayerOne
		grid[3][3] = PlayerOne
		grid[5][5] = PlayerOne
		grid[6][6] = PlayerOne

		// When: filling the gap
		winLine, err := grid.Place(4, 4, PlayerOne)

		// Then: the full diagonal is reported, placed cell included
		require.NoError(t, err)
		require.Len(t, winLine, 5)
		assert.Equal(t, Position{4, 4}, winLine[0])
	})

	t.Run("Detects a down-left diagonal", func(t *testing.T) {
		// Given: four stones on a down-left diagonal
		grid := New(StartingSize)
		grid[1][8] = PlayerTwo
		grid[2][7] = PlayerTwo
		grid[3][6] = PlayerTwo
		grid[4][5] = PlayerTwo

		// When: extending the diagonal
		winLine, err := grid.Place(5, 4, PlayerTwo)

		// Then: the line of five is detected
		require.NoError(t, err)
		require.Len(t, winLine, 5)
		assert.Contains(t, winLine, Position{5, 4})
	})

	t.Run("Returns the whole run when it is longer than five", func(t *testing.T) {
		// Given: five stones with a one-cell gap in the middle
		grid := New(StartingSize)
		for _, col := range []int{2, 3, 4, 6, 7} {
			grid[9][col] = PlayerOne
		}

		// When: filling the gap
		winLine, err := grid.Place(9, 5, PlayerOne)

		// Then: all six contiguous stones are part of the line
		require.NoError(t, err)
		require.Len(t, winLine, 6)
	})

	t.Run("Returns no line for four in a row", func(t *testing.T) {
		// Given: three stones in a row
		grid := New(StartingSize)
		for col := 0; col < 3; col++ {
			grid[0][col] = PlayerOne
		}

		// When: placing a fourth
		winLine, err := grid.Place(0, 3, PlayerOne)

		// Then: no win is reported
		require.NoError(t, err)
		assert.Nil(t, winLine)
	})

	t.Run("Reports only the first-scanned axis on a double win", func(t *testing.T) {
		// Given: a placement that completes a vertical and a horizontal
		// line at the same time
		grid := New(StartingSize)
		for row := 3; row < 7; row++ {
			grid[row][7] = PlayerOne
		}
		for col := 3; col < 7; col++ {
			grid[7][col] = PlayerOne
		}

		// When: placing at the crossing point
		winLine, err := grid.Place(7, 7, PlayerOne)

		// Then: the vertical line wins the tie-break
		require.NoError(t, err)
		require.Len(t, winLine, 5)
		for _, position := range winLine {
			assert.Equal(t, 7, position[1])
		}
	})

	t.Run("Ignores the opponent's stones in the run", func(t *testing.T) {
		// Given: a row interrupted by an opponent stone
		grid := New(StartingSize)
		grid[4][0] = PlayerOne
		grid[4][1] = PlayerOne
		grid[4][2] = PlayerTwo
		grid[4][3] = PlayerOne
		grid[4][4] = PlayerOne

		// When: extending the shorter side
		winLine, err := grid.Place(4, 5, PlayerOne)

		// Then: the interrupted run does not count as a win
		require.NoError(t, err)
		assert.Nil(t, winLine)
	})
}

func TestBoard_Expand(t *testing.T) {
	t.Run("Grows by one row and column and keeps the stones", func(t *testing.T) {
		// Given: a board with a few stones
		grid := New(StartingSize)
		grid[0][0] = PlayerOne
		grid[7][7] = PlayerTwo
		grid[14][14] = PlayerOne

		// When: expanding
		expanded := grid.Expand()

		// Then: the size grew by one and all stones kept their coordinates
		require.Equal(t, StartingSize+1, expanded.Size())
		assert.Equal(t, PlayerOne, expanded[0][0])
		assert.Equal(t, PlayerTwo, expanded[7][7])
		assert.Equal(t, PlayerOne, expanded[14][14])
		for i := 0; i < expanded.Size(); i++ {
			assert.Equal(t, EmptyCell, expanded[i][StartingSize])
			assert.Equal(t, EmptyCell, expanded[StartingSize][i])
		}
	})
}

func TestBoard_Clone(t *testing.T) {
	t.Run("Clone is independent of the original", func(t *testing.T) {
		// Given: a board with one stone
		grid := New(StartingSize)
		grid[1][1] = PlayerOne

		// When: cloning and mutating the clone
		cloned := grid.Clone()
		cloned[1][1] = PlayerTwo
		cloned[2][2] = PlayerTwo

		// Then: the original is untouched
		assert.Equal(t, PlayerOne, grid[1][1])
		assert.Equal(t, EmptyCell, grid[2][2])
	})
}
