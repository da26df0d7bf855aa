package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type memoryScoreboard struct {
	mu          sync.RWMutex
	scoreboards map[string]entity.Scoreboard
}

// NewMemoryScoreboard keeps scoreboards for the lifetime of the process only.
func NewMemoryScoreboard() ScoreboardRepository {
	return &memoryScoreboard{
		scoreboards: make(map[string]entity.Scoreboard),
	}
}

func (that *memoryScoreboard) Record(_ context.Context, scoreboard entity.Scoreboard) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scoreboards[scoreboard.SessionID] = scoreboard

	return nil
}

func (that *memoryScoreboard) GetBySessionID(_ context.Context, sessionID string) (*entity.Scoreboard, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	scoreboard, ok := that.scoreboards[sessionID]
	if !ok {
		return nil, ErrScoreboardNotFound
	}

	return &scoreboard, nil
}
