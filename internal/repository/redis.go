package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	gameStatsKey = "game_stats"
	statsTTL     = time.Hour
)

// incrementIfPresent bumps a field only when the hash exists, in one step.
var incrementIfPresent = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return redis.call("HINCRBY", KEYS[1], ARGV[1], 1)
end
return 0
`)

type redisCounters struct {
	client *redis.Client
}

func (c *redisCounters) IncrementIfPresent(ctx context.Context, outcome string) error {
	if err := incrementIfPresent.Run(ctx, c.client, []string{gameStatsKey}, outcome).Err(); err != nil {
		return fmt.Errorf("error updating game stats: %w", err)
	}
	return nil
}

func (c *redisCounters) Load(ctx context.Context) (map[string]string, error) {
	hash, err := c.client.HGetAll(ctx, gameStatsKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("error getting game stats: %w", err)
	}
	return hash, nil
}

func (c *redisCounters) Replace(ctx context.Context, counts map[string]int64) error {
	fields := make(map[string]interface{}, len(counts))
	for outcome, count := range counts {
		fields[outcome] = count
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, gameStatsKey)
		pipe.HSet(ctx, gameStatsKey, fields)
		pipe.Expire(ctx, gameStatsKey, statsTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error storing game stats: %w", err)
	}
	return nil
}
