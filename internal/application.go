package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

// RunApp - runs the game on the process's standard streams until the players stop or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run plays one session reading answers from in and writing prompts and boards to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	scoreboardRepo, closeRepo, err := newScoreboardRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close scoreboard storage", "error", err)
		}
	}()

	return playSession(ctx, logger, scoreboardRepo, conf, in, out)
}

type scoreboardStore interface {
	Record(ctx context.Context, scoreboard entity.Scoreboard) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Scoreboard, error)
}

// playSession runs the match and reports the final scoreboard as the store holds it.
func playSession(ctx context.Context, logger *slog.Logger, scoreboardRepo scoreboardStore, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	sessionID, err := pkg.GenerateSessionID()
	if err != nil {
		return err
	}

	input := console.NewInput(in, out)
	output := console.NewOutput(out, !conf.NoColor)
	controller := tictactoe.NewMatchController(logger, sessionID, input, output, scoreboardRepo)

	log.Info("Starting session", "session", sessionID, "redis", conf.Redis.Enabled)

	// the controller blocks on input, which a signal cannot interrupt
	doneCh := make(chan error, 1)
	go func() {
		doneCh <- controller.Run(ctx)
	}()

	select {
	case err = <-doneCh:
		if err != nil {
			return fmt.Errorf("match failed: %w", err)
		}

		scoreboard, err := scoreboardRepo.GetBySessionID(ctx, sessionID)
		if err != nil {
			log.Error("could not read final scoreboard", "session", sessionID, "error", err)
			return nil
		}

		log.Info("Session finished", "scoreboard", scoreboard)
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newScoreboardRepository(ctx context.Context, conf *config.Config) (repository.ScoreboardRepository, func() error, error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryScoreboard(), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewScoreboardRepository(redisStorage.Connection, conf.Redis.TTL), redisStorage.Close, nil
}
