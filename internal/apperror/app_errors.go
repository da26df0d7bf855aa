package apperror

import "errors"

var (
	ErrOutOfRange    = errors.New("coordinate is out of range")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrParse         = errors.New("input is not two numbers")
	ErrDuplicateMark = errors.New("mark is already taken by the other player")
	ErrInvalidMark   = errors.New("invalid mark")
)
