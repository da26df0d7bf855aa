package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = CellMarkA
	o = CellMarkB
	e = CellEmpty
)

func boardFrom(cells [9]Cell) *Board {
	board := NewBoard()
	for i, cell := range cells {
		board.cells[i/BoardSize][i%BoardSize] = cell
	}

	return board
}

func TestBoard_Place(t *testing.T) {
	t.Run("Every empty cell accepts exactly one placement", func(t *testing.T) {
		for row := 1; row <= BoardSize; row++ {
			for col := 1; col <= BoardSize; col++ {
				// Given: an empty board
				board := NewBoard()

				// When: placing a mark twice at the same coordinates
				err := board.Place(row, col, x)
				require.NoError(t, err)

				err = board.Place(row, col, o)

				// Then: the second placement is rejected and the first mark stays
				require.ErrorIs(t, err, apperror.ErrCellOccupied)

				cell, err := board.CellAt(row, col)
				require.NoError(t, err)
				assert.Equal(t, x, cell)
			}
		}
	})

	t.Run("Stores 1-based coordinates at 0-based indexes", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: placing at row 3, column 1
		require.NoError(t, board.Place(3, 1, o))

		// Then: only the bottom-left cell is taken
		expected := boardFrom([9]Cell{
			e, e, e,
			e, e, e,
			o, e, e,
		})
		assert.Equal(t, expected, board)
	})

	t.Run("Rejects coordinates outside 1..3", func(t *testing.T) {
		coords := [][2]int{{0, 1}, {1, 0}, {4, 1}, {1, 4}, {-1, -1}, {3, 4}}

		for _, coord := range coords {
			// Given: an empty board
			board := NewBoard()

			// When: placing outside the grid
			err := board.Place(coord[0], coord[1], x)

			// Then: ErrOutOfRange is returned and the board is untouched
			require.ErrorIs(t, err, apperror.ErrOutOfRange)
			assert.Equal(t, NewBoard(), board)
		}
	})

	t.Run("Rejects the empty cell as a mark", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: placing CellEmpty
		err := board.Place(2, 2, CellEmpty)

		// Then: ErrInvalidMark is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBoard_CheckWin(t *testing.T) {
	t.Run("Row", func(t *testing.T) {
		// Given: X on (1,1), (1,2), (1,3)
		board := NewBoard()
		require.NoError(t, board.Place(1, 1, x))
		require.NoError(t, board.Place(1, 2, x))
		require.NoError(t, board.Place(1, 3, x))

		// Then: X wins, O does not
		assert.True(t, board.CheckWin(x))
		assert.False(t, board.CheckWin(o))
	})

	t.Run("Column", func(t *testing.T) {
		// Given: O filling the middle column
		board := boardFrom([9]Cell{
			x, o, e,
			e, o, x,
			x, o, e,
		})

		// Then: O wins
		assert.True(t, board.CheckWin(o))
		assert.False(t, board.CheckWin(x))
	})

	t.Run("Left diagonal", func(t *testing.T) {
		// Given: O on (1,1), (2,2), (3,3)
		board := NewBoard()
		require.NoError(t, board.Place(1, 1, o))
		require.NoError(t, board.Place(2, 2, o))
		require.NoError(t, board.Place(3, 3, o))

		// Then: O wins
		assert.True(t, board.CheckWin(o))
	})

	t.Run("Right diagonal", func(t *testing.T) {
		// Given: O on (1,3), (2,2), (3,1)
		board := NewBoard()
		require.NoError(t, board.Place(1, 3, o))
		require.NoError(t, board.Place(2, 2, o))
		require.NoError(t, board.Place(3, 1, o))

		// Then: O wins
		assert.True(t, board.CheckWin(o))
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		// Given: a top row shared by both marks
		board := boardFrom([9]Cell{
			x, x, o,
			e, e, e,
			e, e, e,
		})

		// Then: nobody wins
		assert.False(t, board.CheckWin(x))
		assert.False(t, board.CheckWin(o))
	})

	t.Run("Empty never wins", func(t *testing.T) {
		// Given: an empty board, where every line is uniformly empty
		board := NewBoard()

		// Then: CellEmpty is not a winner
		assert.False(t, board.CheckWin(CellEmpty))
	})
}

func TestBoard_CheckDraw(t *testing.T) {
	t.Run("Full board without a line", func(t *testing.T) {
		// Given: X,O,X / O,X,O / O,X,O
		board := boardFrom([9]Cell{
			x, o, x,
			o, x, o,
			o, x, o,
		})

		// Then: it is a draw and nobody wins
		assert.True(t, board.CheckDraw())
		assert.False(t, board.CheckWin(x))
		assert.False(t, board.CheckWin(o))
	})

	t.Run("Board with an empty cell is not a draw", func(t *testing.T) {
		// Given: one empty cell left
		board := boardFrom([9]Cell{
			x, o, x,
			o, x, o,
			o, x, e,
		})

		// Then: it is not a draw
		assert.False(t, board.CheckDraw())
	})

	t.Run("Reset then nine non-winning placements is a draw", func(t *testing.T) {
		// Given: a used board that gets reset
		board := boardFrom([9]Cell{
			x, x, x,
			o, o, e,
			e, e, e,
		})
		board.Reset()

		// When: nine alternating placements without a winner are made
		moves := []struct {
			row, col int
			mark     Cell
		}{
			{1, 2, o}, {1, 1, x}, {2, 1, o}, {1, 3, x}, {2, 3, o},
			{2, 2, x}, {3, 1, o}, {3, 2, x}, {3, 3, o},
		}
		for _, move := range moves {
			require.NoError(t, board.Place(move.row, move.col, move.mark))
			require.False(t, board.CheckWin(move.mark))
		}

		// Then: the board is a draw
		assert.True(t, board.CheckDraw())
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with marks on it
	board := boardFrom([9]Cell{
		x, o, x,
		o, x, o,
		o, x, o,
	})

	// When: resetting
	board.Reset()

	// Then: every cell is empty again
	assert.Equal(t, NewBoard(), board)
	assert.False(t, board.CheckDraw())
}

// TestBoard_AllPositions compares CheckWin and CheckDraw against a direct
// index-arithmetic scan over every possible 3x3 board.
func TestBoard_AllPositions(t *testing.T) {
	var cells [9]Cell

	for n := 0; n < 19683; n++ {
		v := n
		full := true
		for i := range cells {
			cells[i] = Cell(v % 3)
			v /= 3
			if cells[i] == CellEmpty {
				full = false
			}
		}

		board := boardFrom(cells)

		for _, mark := range []Cell{x, o} {
			require.Equal(t, uniformLine(cells, mark), board.CheckWin(mark), "board %v mark %d", cells, mark)
		}
		require.Equal(t, full, board.CheckDraw(), "board %v", cells)
	}
}

func uniformLine(cells [9]Cell, mark Cell) bool {
	at := func(r, c int) bool { return cells[r*3+c] == mark }

	for i := 0; i < 3; i++ {
		if at(i, 0) && at(i, 1) && at(i, 2) {
			return true
		}
		if at(0, i) && at(1, i) && at(2, i) {
			return true
		}
	}

	return (at(0, 0) && at(1, 1) && at(2, 2)) || (at(0, 2) && at(1, 1) && at(2, 0))
}
