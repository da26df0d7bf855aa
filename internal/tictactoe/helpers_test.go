package tictactoe

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/mock"
)

// scriptedInput replays lines in order and reports io.EOF once they run out.
type scriptedInput struct {
	lines   []string
	prompts []string
}

func newScriptedInput(lines ...string) *scriptedInput {
	return &scriptedInput{lines: lines}
}

func (that *scriptedInput) ReadLine(_ context.Context, prompt string) (string, error) {
	that.prompts = append(that.prompts, prompt)

	if len(that.lines) == 0 {
		return "", io.EOF
	}

	line := that.lines[0]
	that.lines = that.lines[1:]

	return line, nil
}

type bufferOutput struct {
	sb strings.Builder
}

func (that *bufferOutput) Write(text string) {
	that.sb.WriteString(text)
}

func (that *bufferOutput) String() string {
	return that.sb.String()
}

type mockRecorder struct {
	mock.Mock
}

func (that *mockRecorder) Record(ctx context.Context, scoreboard entity.Scoreboard) error {
	args := that.Called(ctx, scoreboard)
	return args.Error(0)
}

func acceptingRecorder() *mockRecorder {
	recorder := &mockRecorder{}
	recorder.On("Record", mock.Anything, mock.AnythingOfType("entity.Scoreboard")).Return(nil)

	return recorder
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func emptyBoard() string {
	return "[ ][ ][ ]\n[ ][ ][ ]\n[ ][ ][ ]\n"
}

// setupLines registers alice as X and bob as O.
func setupLines() []string {
	return []string{"alice", "X", "bob", "O"}
}

func script(parts ...[]string) []string {
	var lines []string
	for _, part := range parts {
		lines = append(lines, part...)
	}

	return lines
}

// alice (first) wins on the top row.
func firstPlayerWins() []string {
	return []string{"1 1", "2 1", "1 2", "2 2", "1 3"}
}

// bob (second) wins on the middle row.
func secondPlayerWins() []string {
	return []string{"1 1", "2 1", "1 2", "2 2", "3 3", "2 3"}
}

// nine moves, no line.
func drawnRound() []string {
	return []string{"1 2", "1 1", "2 1", "1 3", "2 3", "2 2", "3 1", "3 2", "3 3"}
}
