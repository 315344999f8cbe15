package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the backend for explicit cross-document identity sharing.
// Implementations must be safe for use from multiple document workers.
type Store interface {
	// Lookup returns the pseudonym stored under category/key, or "" when
	// absent.
	Lookup(ctx context.Context, category, key string) (string, error)

	// Store records the pseudonym under category/key.
	Store(ctx context.Context, category, key, pseudonym string) error

	// Next atomically increments and returns the named counter, starting
	// at 1.
	Next(ctx context.Context, counter string) (int, error)

	// Close releases the backend connection.
	Close() error
}

// RedisOptions configures the Redis-backed store.
type RedisOptions struct {
	// URL is the Redis connection string (e.g. "redis://localhost:6379").
	URL string

	// Namespace prefixes every key so multiple corpora can share one
	// Redis instance. Defaults to "redact".
	Namespace string

	// ConnectTimeout is the maximum time to wait for connection
	// establishment.
	ConnectTimeout time.Duration
}

// RedisStore implements Store on Redis hashes and counters. Identity maps
// live in one hash per category, counters in plain INCR keys.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.Namespace == "" {
		opts.Namespace = "redact"
	}
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if opts.ConnectTimeout > 0 {
		redisOpts.DialTimeout = opts.ConnectTimeout
	}
	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client, namespace: opts.Namespace}, nil
}

func (s *RedisStore) mapKey(category string) string {
	return fmt.Sprintf("%s:identities:%s", s.namespace, category)
}

func (s *RedisStore) counterKey(counter string) string {
	return fmt.Sprintf("%s:counter:%s", s.namespace, counter)
}

// Lookup implements Store.
func (s *RedisStore) Lookup(ctx context.Context, category, key string) (string, error) {
	v, err := s.client.HGet(ctx, s.mapKey(category), key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup %s/%s: %w", category, key, err)
	}
	return v, nil
}

// Store implements Store.
func (s *RedisStore) Store(ctx context.Context, category, key, pseudonym string) error {
	if err := s.client.HSet(ctx, s.mapKey(category), key, pseudonym).Err(); err != nil {
		return fmt.Errorf("store %s/%s: %w", category, key, err)
	}
	return nil
}

// Next implements Store.
func (s *RedisStore) Next(ctx context.Context, counter string) (int, error) {
	n, err := s.client.Incr(ctx, s.counterKey(counter)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", counter, err)
	}
	return int(n), nil
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
