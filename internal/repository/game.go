package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type GameRepository interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Get(ctx context.Context) (*entity.Snapshot, error)
	Delete(ctx context.Context) error
}

// dbGame keeps the single saved game under one key.
type dbGame struct {
	client *redis.Client
	key    string
}

func NewGameRepository(client *redis.Client, key string) GameRepository {
	return &dbGame{
		client: client,
		key:    key,
	}
}

func (that *dbGame) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, that.key, snapshotJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) Get(ctx context.Context) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, that.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: no saved game", apperror.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal(response, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidSnapshot, err)
	}

	return &snapshot, nil
}

func (that *dbGame) Delete(ctx context.Context) error {
	if err := that.client.Del(ctx, that.key).Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
