package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const separatorWidth = 15

// Separator is printed before every board except the first one of a session.
var Separator = strings.Repeat(strings.Repeat("=", separatorWidth)+"\n", 2)

// RenderBoard draws the board one row per line, "[ ]" for empty cells and "[X]" for a cell holding mark X.
func RenderBoard(board *entity.Board, glyph func(entity.Cell) rune) string {
	var sb strings.Builder

	for row := 1; row <= entity.BoardSize; row++ {
		for col := 1; col <= entity.BoardSize; col++ {
			// never fails for in-range coordinates
			cell, _ := board.CellAt(row, col)

			sb.WriteByte('[')
			if cell == entity.CellEmpty {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(glyph(cell))
			}
			sb.WriteByte(']')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
