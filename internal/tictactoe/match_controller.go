package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	firstPlayer = 0

	namePrompt   = "Player %d please enter your name: "
	markPrompt   = "Please enter your character (must be only one): "
	movePrompt   = "%s please enter row and column separated with space: "
	replayPrompt = "Do you want to play one more round? n = `no` press any other key to continue "

	duplicateMarkMessage = "This character has already been selected by the other player\n"
	invalidMarkMessage   = "Please enter exactly one character.\n"
)

var ErrUnknownState = errors.New("unknown match state")

// InputProvider returns one line of text typed by a player. It blocks until the line is available.
type InputProvider interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

type OutputSink interface {
	Write(text string)
}

// announcer is implemented by sinks that can highlight important messages.
type announcer interface {
	Announce(text string)
}

type scoreRecorder interface {
	Record(ctx context.Context, scoreboard entity.Scoreboard) error
}

type StateKind int

const (
	StateAwaitingMove StateKind = iota + 1
	StateRoundOver
	StateSessionOver
)

type Outcome int

const (
	OutcomeWin Outcome = iota + 1
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// State is the position of the session in its lifecycle.
// Active is the index of the player to move (AwaitingMove) or the player who made the last move (RoundOver).
type State struct {
	Kind    StateKind
	Active  int
	Outcome Outcome
}

// MatchController owns the board and both players and drives a session of rounds until the players stop.
type MatchController struct {
	logger   *slog.Logger
	input    InputProvider
	output   OutputSink
	recorder scoreRecorder

	sessionID  string
	board      *entity.Board
	players    [2]*entity.Player
	score      entity.Score
	state      State
	boardShown bool
}

func NewMatchController(logger *slog.Logger, sessionID string, input InputProvider, output OutputSink, recorder scoreRecorder) *MatchController {
	return &MatchController{
		logger:    logger.With("component", "match", "session", sessionID),
		input:     input,
		output:    output,
		recorder:  recorder,
		sessionID: sessionID,
		board:     entity.NewBoard(),
	}
}

// Run asks both players for their names and marks, then plays rounds until the players decline another one.
func (that *MatchController) Run(ctx context.Context) error {
	if err := that.setupPlayers(ctx); err != nil {
		return fmt.Errorf("failed to set up players: %w", err)
	}

	that.renderBoard()
	that.state = State{Kind: StateAwaitingMove, Active: firstPlayer}

	for that.state.Kind != StateSessionOver {
		if err := that.step(ctx); err != nil {
			return err
		}
	}

	that.logger.Info("session over", "rounds", that.score.Rounds, "draws", that.score.Draws)

	return nil
}

func (that *MatchController) State() State {
	return that.state
}

func (that *MatchController) Scoreboard() entity.Scoreboard {
	if that.players[0] == nil || that.players[1] == nil {
		return entity.Scoreboard{SessionID: that.sessionID}
	}

	return entity.NewScoreboard(that.sessionID, that.players[0], that.players[1], that.score)
}

func (that *MatchController) step(ctx context.Context) error {
	switch that.state.Kind {
	case StateAwaitingMove:
		return that.playTurn(ctx)
	case StateRoundOver:
		return that.askReplay(ctx)
	case StateSessionOver:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownState, that.state.Kind)
	}
}

func (that *MatchController) playTurn(ctx context.Context) error {
	active := that.players[that.state.Active]
	opponent := that.players[1-that.state.Active]

	if err := that.placeMove(ctx, active); err != nil {
		return err
	}

	that.renderBoard()

	switch {
	case that.board.CheckWin(active.Cell):
		entity.AddWin(active, opponent)
		that.announce(active.Name + " WINS!\n")
		that.writeResults(active, opponent)
		that.endRound(ctx, OutcomeWin)
	case that.board.CheckDraw():
		that.score.Draws++
		that.writeResults(active, opponent)
		that.endRound(ctx, OutcomeDraw)
	default:
		that.state.Active = 1 - that.state.Active
	}

	return nil
}

// placeMove keeps asking the player until their move lands on the board.
func (that *MatchController) placeMove(ctx context.Context, player *entity.Player) error {
	prompt := fmt.Sprintf(movePrompt, player.Name)

	for {
		line, err := that.input.ReadLine(ctx, prompt)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		row, col, err := ParseMove(line)
		if err == nil {
			err = that.board.Place(row, col, player.Cell)
		}

		if err == nil {
			return nil
		}

		that.logger.Debug("move rejected", "player", player.Name, "input", line, "error", err)
		that.output.Write(retryMessage(err) + "\n")
	}
}

func (that *MatchController) endRound(ctx context.Context, outcome Outcome) {
	that.score.Rounds++
	that.state = State{Kind: StateRoundOver, Active: that.state.Active, Outcome: outcome}

	that.logger.Info("round finished",
		"round", that.score.Rounds,
		"outcome", outcome.String(),
		"last_move_by", that.players[that.state.Active].Name,
	)

	if err := that.recorder.Record(ctx, that.Scoreboard()); err != nil {
		that.logger.Error("failed to record scoreboard", "error", err)
	}
}

func (that *MatchController) askReplay(ctx context.Context) error {
	answer, err := that.input.ReadLine(ctx, replayPrompt)
	if err != nil {
		return fmt.Errorf("failed to read replay answer: %w", err)
	}

	if strings.EqualFold(strings.TrimSpace(answer), "n") {
		that.state = State{Kind: StateSessionOver}
		return nil
	}

	that.board.Reset()
	that.renderBoard()
	that.state = State{Kind: StateAwaitingMove, Active: firstPlayer}

	return nil
}

func (that *MatchController) setupPlayers(ctx context.Context) error {
	first, err := that.readPlayer(ctx, 1, entity.CellMarkA, nil)
	if err != nil {
		return err
	}

	second, err := that.readPlayer(ctx, 2, entity.CellMarkB, first)
	if err != nil {
		return err
	}

	that.players = [2]*entity.Player{first, second}

	return nil
}

// readPlayer asks for a name and a mark. other is the already registered player, if any.
func (that *MatchController) readPlayer(ctx context.Context, number int, cell entity.Cell, other *entity.Player) (*entity.Player, error) {
	name, err := that.input.ReadLine(ctx, fmt.Sprintf(namePrompt, number))
	if err != nil {
		return nil, fmt.Errorf("failed to read name of player %d: %w", number, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Player %d", number)
	}

	for {
		line, err := that.input.ReadLine(ctx, markPrompt)
		if err != nil {
			return nil, fmt.Errorf("failed to read mark of player %d: %w", number, err)
		}

		mark, err := entity.ParseMark(line)
		if err == nil && other != nil && !entity.MarksDiffer(mark, other.Mark) {
			err = fmt.Errorf("%w: %q", apperror.ErrDuplicateMark, mark)
		}

		if err == nil {
			return entity.NewPlayer(name, mark, cell), nil
		}

		that.logger.Debug("mark rejected", "player", number, "input", line, "error", err)

		if errors.Is(err, apperror.ErrDuplicateMark) {
			that.output.Write(duplicateMarkMessage)
		} else {
			that.output.Write(invalidMarkMessage)
		}
	}
}

func (that *MatchController) renderBoard() {
	text := RenderBoard(that.board, that.glyph)
	if that.boardShown {
		text = Separator + text
	}

	that.boardShown = true
	that.output.Write(text)
}

func (that *MatchController) glyph(cell entity.Cell) rune {
	for _, player := range that.players {
		if player != nil && player.Cell == cell {
			return player.Mark
		}
	}

	return '?'
}

// writeResults prints first then second, followed by the shared draws.
func (that *MatchController) writeResults(first, second *entity.Player) {
	var sb strings.Builder

	for _, player := range []*entity.Player{first, second} {
		fmt.Fprintf(&sb, "\t%-8s Wins: %d, Loses: %d\n", player.Name, player.Wins, player.Losses)
	}
	fmt.Fprintf(&sb, "\tDraws: %d\n", that.score.Draws)

	that.output.Write(sb.String())
}

func (that *MatchController) announce(text string) {
	if a, ok := that.output.(announcer); ok {
		a.Announce(text)
		return
	}

	that.output.Write(text)
}
