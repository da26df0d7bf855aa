package entity

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Player struct {
	Name   string `json:"name"`
	Mark   rune   `json:"-"`
	Cell   Cell   `json:"-"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

func NewPlayer(name string, mark rune, cell Cell) *Player {
	return &Player{
		Name: name,
		Mark: mark,
		Cell: cell,
	}
}

// AddWin records a won round for winner and a lost round for loser.
func AddWin(winner, loser *Player) {
	winner.Wins++
	loser.Losses++
}

// ParseMark accepts exactly one non-space character.
func ParseMark(input string) (rune, error) {
	if utf8.RuneCountInString(input) != 1 {
		return 0, fmt.Errorf("%w: %q must be exactly one character", apperror.ErrInvalidMark, input)
	}

	mark, _ := utf8.DecodeRuneInString(input)
	if mark == utf8.RuneError || unicode.IsSpace(mark) || !unicode.IsPrint(mark) {
		return 0, fmt.Errorf("%w: %q is not printable", apperror.ErrInvalidMark, input)
	}

	return mark, nil
}

func MarksDiffer(a, b rune) bool {
	return a != b
}
