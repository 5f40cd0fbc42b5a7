package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/metrics"
)

const (
	redisKeyPrefix    = "bcard:"
	maxUpdateAttempts = 5
)

// Redis is a CardLists shared between server instances. Lists are stored as
// JSON with a TTL; failures degrade to cache misses.
type Redis struct {
	rdb goredis.UniversalClient
	ttl time.Duration
}

// NewRedisClient parses redisURL (e.g. redis://localhost:6379/0) and pings it.
func NewRedisClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	rdb := goredis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

// NewRedis creates a Redis-backed cache.
func NewRedis(rdb goredis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) ([]domain.Card, bool) {
	data, err := r.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			slog.Warn("Redis cache GET failed, falling through to API", "key", key, "error", err)
		}
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var cards []domain.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		slog.Warn("Failed to unmarshal cached cards, falling through to API", "key", key, "error", err)
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return cards, true
}

func (r *Redis) Set(ctx context.Context, key string, cards []domain.Card) {
	r.store(ctx, key, cards, r.ttl)
}

// Update patches the list under WATCH and keeps the remaining TTL of the
// key. Concurrent patches retry; a list that cannot be patched is dropped so
// the next read refetches it.
func (r *Redis) Update(ctx context.Context, key string, fn func([]domain.Card) []domain.Card) {
	k := redisKeyPrefix + key
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.rdb.Watch(ctx, func(tx *goredis.Tx) error {
			ttl, err := tx.PTTL(ctx, k).Result()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				return nil
			}
			data, err := tx.Get(ctx, k).Bytes()
			if errors.Is(err, goredis.Nil) {
				return nil
			}
			if err != nil {
				return err
			}
			var cards []domain.Card
			if err := json.Unmarshal(data, &cards); err != nil {
				return err
			}
			encoded, err := json.Marshal(fn(cards))
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
				pipe.Set(ctx, k, encoded, ttl)
				return nil
			})
			return err
		}, k)
		if err == nil {
			return
		}
		if !errors.Is(err, goredis.TxFailedErr) {
			slog.Warn("Redis cache update failed, dropping list", "key", key, "error", err)
			break
		}
	}
	r.Delete(ctx, key)
}

func (r *Redis) Delete(ctx context.Context, key string) {
	if err := r.rdb.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		slog.Warn("Redis cache DEL failed", "key", key, "error", err)
	}
}

func (r *Redis) store(ctx context.Context, key string, cards []domain.Card, ttl time.Duration) {
	encoded, err := json.Marshal(cards)
	if err != nil {
		slog.Warn("Failed to encode cards for cache", "key", key, "error", err)
		return
	}
	if err := r.rdb.Set(ctx, redisKeyPrefix+key, encoded, ttl).Err(); err != nil {
		slog.Warn("Redis cache SET failed", "key", key, "error", err)
	}
}
