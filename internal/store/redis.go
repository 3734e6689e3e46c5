package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the pricing document in Redis so several hosts can share
// one cache. The document lives under key, the last write time under
// key + ":updated_at" as RFC3339. Both are written in one pipeline.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed store using an injected client.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{
		client: client,
		key:    key,
	}
}

func (s *RedisStore) modifiedKey() string {
	return s.key + ":updated_at"
}

// Read returns the cached document, or ErrNotExist.
func (s *RedisStore) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to read pricing key: %w", err)
	}
	return data, nil
}

// Write replaces the cached document and its modification timestamp.
func (s *RedisStore) Write(ctx context.Context, data []byte) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key, data, 0)
	pipe.Set(ctx, s.modifiedKey(), time.Now().UTC().Format(time.RFC3339), 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write pricing key: %w", err)
	}
	return nil
}

// LastModified returns the last write time, or ErrNotExist.
func (s *RedisStore) LastModified(ctx context.Context) (time.Time, error) {
	value, err := s.client.Get(ctx, s.modifiedKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, ErrNotExist
		}
		return time.Time{}, fmt.Errorf("failed to read modification key: %w", err)
	}

	modified, err := time.Parse(time.RFC3339, value)
	if err != nil {
		// A corrupt timestamp means age is unknown; report not-exist so
		// the cache treats the entry as stale rather than trusting it.
		return time.Time{}, ErrNotExist
	}
	return modified, nil
}
