package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrScoreboardNotFound = errors.New("scoreboard not found")

type ScoreboardRepository interface {
	Record(ctx context.Context, scoreboard entity.Scoreboard) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Scoreboard, error)
}

type dbScoreboard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreboardRepository keeps the latest scoreboard of each session in Redis. Entries expire after ttl; zero keeps them.
func NewScoreboardRepository(client *redis.Client, ttl time.Duration) ScoreboardRepository {
	return &dbScoreboard{
		client: client,
		ttl:    ttl,
	}
}

func scoreboardKey(sessionID string) string {
	return "scoreboard:" + sessionID
}

func (that *dbScoreboard) Record(ctx context.Context, scoreboard entity.Scoreboard) error {
	scoreboardJSON, err := json.Marshal(scoreboard)
	if err != nil {
		return fmt.Errorf("could not marshal scoreboard: %w", err)
	}

	err = that.client.Set(ctx, scoreboardKey(scoreboard.SessionID), scoreboardJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set scoreboard: %w", err)
	}

	return nil
}

func (that *dbScoreboard) GetBySessionID(ctx context.Context, sessionID string) (*entity.Scoreboard, error) {
	response, err := that.client.Get(ctx, scoreboardKey(sessionID)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrScoreboardNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard by session id: %w", err)
	}

	var scoreboard entity.Scoreboard
	if err = json.Unmarshal([]byte(response), &scoreboard); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoreboard: %w", err)
	}

	return &scoreboard, nil
}
