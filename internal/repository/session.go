package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

var ErrSessionNotFound = errors.New("saved game not found")

const currentSessionKey = "game:current"

// SessionRepository persists the one in-flight game so it can be resumed on
// the next launch.
type SessionRepository interface {
	Save(ctx context.Context, game *entity.Game) error
	Current(ctx context.Context) (*entity.Game, error)
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{
		client: client,
	}
}

func (that *sessionRepository) Save(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	gameKey := "game:" + game.ID
	if err = that.client.Set(ctx, gameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	if err = that.client.Set(ctx, currentSessionKey, game.ID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set current game pointer: %w", err)
	}

	return nil
}

func (that *sessionRepository) Current(ctx context.Context) (*entity.Game, error) {
	id, err := that.client.Get(ctx, currentSessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get current game pointer: %w", err)
	}

	response, err := that.client.Get(ctx, "game:"+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *sessionRepository) Clear(ctx context.Context) error {
	id, err := that.client.Get(ctx, currentSessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to get current game pointer: %w", err)
	}

	if err = that.client.Del(ctx, "game:"+id, currentSessionKey).Err(); err != nil {
		return fmt.Errorf("failed to delete saved game: %w", err)
	}

	return nil
}
