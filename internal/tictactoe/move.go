package tictactoe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	ErrTokenCount = fmt.Errorf("%w: expected row and column", apperror.ErrParse)
	ErrNotNumber  = fmt.Errorf("%w: row and column must be numbers", apperror.ErrParse)
)

// ParseMove reads "<row> <column>" with one or more spaces between the two numbers.
func ParseMove(input string) (int, int, error) {
	tokens := strings.Fields(input)
	if len(tokens) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d tokens", ErrTokenCount, len(tokens))
	}

	row, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrNotNumber, tokens[0])
	}

	col, err := strconv.Atoi(tokens[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrNotNumber, tokens[1])
	}

	if row < 1 || row > entity.BoardSize || col < 1 || col > entity.BoardSize {
		return 0, 0, fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfRange, row, col)
	}

	return row, col, nil
}

// retryMessage is what a player sees before being asked for their move again.
func retryMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "The field is not empty. Please try again!"
	case errors.Is(err, apperror.ErrOutOfRange):
		return "Please enter numbers between 1 and 3 (inclusive)"
	case errors.Is(err, ErrNotNumber):
		return "Please enter numbers."
	default:
		return "Please use separator for the values"
	}
}
