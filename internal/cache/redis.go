package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a JSON-encoded TTL cache shared between processes. Errors are
// logged and reported as misses so callers can always recompute.
type Redis[V any] struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

const dialTimeout = 5 * time.Second

func NewRedis[V any](cfg RedisConfig, logger *slog.Logger) (*Redis[V], error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	logger.Info("connected to redis", "addr", cfg.Addr)

	return &Redis[V]{
		client: client,
		prefix: cfg.Prefix,
		logger: logger,
	}, nil
}

func (r *Redis[V]) Key(key string) string {
	return r.prefix + key
}

func (r *Redis[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V

	data, err := r.client.Get(ctx, r.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, false
	}
	if err != nil {
		r.logger.Warn("redis get failed", "key", key, "error", err)
		return zero, false
	}

	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		r.logger.Warn("dropping undecodable cache entry", "key", key, "error", err)
		r.client.Del(ctx, r.Key(key))
		return zero, false
	}
	return value, true
}

func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("redis marshal failed", "key", key, "error", err)
		return
	}
	if err := r.client.Set(ctx, r.Key(key), data, ttl).Err(); err != nil {
		r.logger.Warn("redis set failed", "key", key, "error", err)
	}
}

func (r *Redis[V]) Close() error {
	return r.client.Close()
}
