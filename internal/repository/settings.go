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

type SettingsRepository interface {
	Save(ctx context.Context, settings *entity.Settings) error
	Get(ctx context.Context) (*entity.Settings, error)
	Delete(ctx context.Context) error
}

type dbSettings struct {
	client *redis.Client
	key    string
}

func NewSettingsRepository(client *redis.Client, key string) SettingsRepository {
	return &dbSettings{
		client: client,
		key:    key,
	}
}

func (that *dbSettings) Save(ctx context.Context, settings *entity.Settings) error {
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err = that.client.Set(ctx, that.key, settingsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set settings: %w", err)
	}

	return nil
}

// Get - returns the saved settings. Fields missing from the stored value keep their defaults.
func (that *dbSettings) Get(ctx context.Context) (*entity.Settings, error) {
	response, err := that.client.Get(ctx, that.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: no saved settings", apperror.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings := entity.DefaultSettings()
	if err = json.Unmarshal(response, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &settings, nil
}

func (that *dbSettings) Delete(ctx context.Context) error {
	if err := that.client.Del(ctx, that.key).Err(); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}

	return nil
}
