// Package cache holds the read-through cache for computed statistics.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/ports"
	"github.com/go-redis/redis/v8"
)

// RedisStatsCache keeps stats under a per-user generation. Invalidate bumps the
// generation so every older entry becomes unreachable and expires on its own.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

var _ ports.StatsCache = (*RedisStatsCache)(nil)

// NewRedisClient connects to Redis and pings it once.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl, prefix: "ft:stats"}
}

func (c *RedisStatsCache) generationKey(userID int64) string {
	return fmt.Sprintf("%s:%d:gen", c.prefix, userID)
}

func (c *RedisStatsCache) entryKey(userID int64, generation int64, key string) string {
	return fmt.Sprintf("%s:%d:g%d:%s", c.prefix, userID, generation, key)
}

func (c *RedisStatsCache) generation(ctx context.Context, userID int64) (int64, error) {
	gen, err := c.client.Get(ctx, c.generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get decodes the cached value into dest and reports whether it was present,
// along with the generation the lookup ran under.
func (c *RedisStatsCache) Get(ctx context.Context, userID int64, key string, dest any) (int64, bool, error) {
	gen, err := c.generation(ctx, userID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to read stats generation: %w", err)
	}

	raw, err := c.client.Get(ctx, c.entryKey(userID, gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return gen, false, nil
	}
	if err != nil {
		return gen, false, fmt.Errorf("failed to read cached stats: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		slog.WarnContext(ctx, "Discarding undecodable stats cache entry", slog.String("key", key), slog.String("error", err.Error()))
		return gen, false, nil
	}
	return gen, true, nil
}

// Set stores value under generation, the one returned by the Get that missed.
// After an Invalidate that generation is no longer read, so the value is dead.
func (c *RedisStatsCache) Set(ctx context.Context, userID int64, generation int64, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := c.client.Set(ctx, c.entryKey(userID, generation, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cached stats: %w", err)
	}
	return nil
}

// Invalidate makes every cached entry of the user stale.
func (c *RedisStatsCache) Invalidate(ctx context.Context, userID int64) error {
	if err := c.client.Incr(ctx, c.generationKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to bump stats generation: %w", err)
	}
	return nil
}

// NoopStatsCache is used when Redis is not configured; every lookup misses.
type NoopStatsCache struct{}

var _ ports.StatsCache = NoopStatsCache{}

func (NoopStatsCache) Get(context.Context, int64, string, any) (int64, bool, error) {
	return 0, false, nil
}
func (NoopStatsCache) Set(context.Context, int64, int64, string, any) error { return nil }
func (NoopStatsCache) Invalidate(context.Context, int64) error             { return nil }
