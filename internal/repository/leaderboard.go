package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	fieldWins   = "wins"
	fieldLosses = "losses"
	fieldTies   = "ties"
)

type LeaderboardRepository interface {
	Init(ctx context.Context) error
	Apply(ctx context.Context, deltas []entity.RecordDelta) error
	GetAll(ctx context.Context) (entity.Leaderboard, error)
	Reset(ctx context.Context) error
}

// dbLeaderboard stores one hash per row under "<key>:row:<name>" and the row names in the set "<key>:names".
type dbLeaderboard struct {
	client *redis.Client
	key    string
}

func NewLeaderboardRepository(client *redis.Client, key string) LeaderboardRepository {
	return &dbLeaderboard{
		client: client,
		key:    key,
	}
}

// Init - makes sure the default rows exist without touching their counters.
func (that *dbLeaderboard) Init(ctx context.Context) error {
	if err := that.Apply(ctx, defaultDeltas()); err != nil {
		return fmt.Errorf("failed to init leaderboard: %w", err)
	}

	return nil
}

// Apply increments all rows in one transaction.
func (that *dbLeaderboard) Apply(ctx context.Context, deltas []entity.RecordDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		that.increment(ctx, pipe, deltas)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update leaderboard: %w", err)
	}

	return nil
}

func (that *dbLeaderboard) GetAll(ctx context.Context) (entity.Leaderboard, error) {
	names, err := that.client.SMembers(ctx, that.namesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard names: %w", err)
	}

	rows := make(map[string]*redis.MapStringStringCmd, len(names))
	_, err = that.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, name := range names {
			rows[name] = pipe.HGetAll(ctx, that.rowKey(name))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard rows: %w", err)
	}

	leaderboard := make(entity.Leaderboard, len(rows))
	for name, cmd := range rows {
		record, err := parseRecord(cmd.Val())
		if err != nil {
			return nil, fmt.Errorf("failed to parse leaderboard row %q: %w", name, err)
		}

		leaderboard[name] = record
	}

	return leaderboard, nil
}

// Reset - drops every row and recreates the defaults in one transaction.
// The name set is watched, so a row added in between fails the reset instead of surviving it.
func (that *dbLeaderboard) Reset(ctx context.Context) error {
	err := that.client.Watch(ctx, func(tx *redis.Tx) error {
		names, err := tx.SMembers(ctx, that.namesKey()).Result()
		if err != nil {
			return fmt.Errorf("failed to get leaderboard names: %w", err)
		}

		keys := make([]string, 0, len(names)+1)
		keys = append(keys, that.namesKey())
		for _, name := range names {
			keys = append(keys, that.rowKey(name))
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, keys...)
			that.increment(ctx, pipe, defaultDeltas())

			return nil
		})

		return err
	}, that.namesKey())
	if err != nil {
		return fmt.Errorf("failed to reset leaderboard: %w", err)
	}

	return nil
}

func (that *dbLeaderboard) increment(ctx context.Context, pipe redis.Pipeliner, deltas []entity.RecordDelta) {
	for _, delta := range deltas {
		rowKey := that.rowKey(delta.Name)

		pipe.SAdd(ctx, that.namesKey(), delta.Name)
		pipe.HIncrBy(ctx, rowKey, fieldWins, int64(delta.Wins))
		pipe.HIncrBy(ctx, rowKey, fieldLosses, int64(delta.Losses))
		pipe.HIncrBy(ctx, rowKey, fieldTies, int64(delta.Ties))
	}
}

func (that *dbLeaderboard) namesKey() string {
	return that.key + ":names"
}

func (that *dbLeaderboard) rowKey(name string) string {
	return that.key + ":row:" + name
}

func defaultDeltas() []entity.RecordDelta {
	defaults := entity.DefaultLeaderboard()

	deltas := make([]entity.RecordDelta, 0, len(defaults))
	for name := range defaults {
		deltas = append(deltas, entity.RecordDelta{Name: name})
	}

	return deltas
}

func parseRecord(fields map[string]string) (entity.Record, error) {
	var record entity.Record

	for field, target := range map[string]*int{
		fieldWins:   &record.Wins,
		fieldLosses: &record.Losses,
		fieldTies:   &record.Ties,
	} {
		value, ok := fields[field]
		if !ok {
			continue
		}

		parsed, err := strconv.Atoi(value)
		if err != nil {
			return entity.Record{}, fmt.Errorf("field %s: %w", field, err)
		}

		*target = parsed
	}

	return record, nil
}
