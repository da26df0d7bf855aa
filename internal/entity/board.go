package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellMarkA
	CellMarkB
)

// BoardSize is the side length of the board. Coordinates passed to the board are 1-based.
const BoardSize = 3

type position struct {
	row, col int
}

// WinLines lists the 8 winning lines: rows, then columns, then the left and right diagonals.
var WinLines = [8][BoardSize]position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func (that Cell) IsMark() bool {
	return that == CellMarkA || that == CellMarkB
}

// Board is a 3x3 grid of cells. The zero value is an empty board.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Place puts mark at the 1-based (row, col). Occupied cells are never overwritten.
func (that *Board) Place(row, col int, mark Cell) error {
	if !mark.IsMark() {
		return fmt.Errorf("%w: cell value %d", apperror.ErrInvalidMark, mark)
	}

	r, c, err := toIndex(row, col)
	if err != nil {
		return err
	}

	if that.cells[r][c] != CellEmpty {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row, col)
	}

	that.cells[r][c] = mark

	return nil
}

// CheckWin reports whether any line is fully occupied by mark.
func (that *Board) CheckWin(mark Cell) bool {
	if !mark.IsMark() {
		return false
	}

	for _, line := range WinLines {
		if that.lineOf(line, mark) {
			return true
		}
	}

	return false
}

func (that *Board) lineOf(line [BoardSize]position, mark Cell) bool {
	for _, pos := range line {
		if that.cells[pos.row][pos.col] != mark {
			return false
		}
	}

	return true
}

// CheckDraw reports whether every cell is occupied. Check for a win first:
// a full board with a winning line is a win.
func (that *Board) CheckDraw() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == CellEmpty {
				return false
			}
		}
	}

	return true
}

func (that *Board) Reset() {
	that.cells = [BoardSize][BoardSize]Cell{}
}

// CellAt returns the cell at the 1-based (row, col).
func (that *Board) CellAt(row, col int) (Cell, error) {
	r, c, err := toIndex(row, col)
	if err != nil {
		return CellEmpty, err
	}

	return that.cells[r][c], nil
}

func toIndex(row, col int) (int, int, error) {
	if row < 1 || row > BoardSize || col < 1 || col > BoardSize {
		return 0, 0, fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfRange, row, col)
	}

	return row - 1, col - 1, nil
}
