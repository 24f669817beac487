package history

import (
	"context"
	"fmt"

	"github.com/aretw0/smol/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// RedisStore keeps history in a Redis list, letting several machines share
// one shell history.
type RedisStore struct {
	client *backend.Client
	key    string
	limit  int
}

type RedisOption func(*RedisStore)

// WithKey sets the list key. Defaults to "smol:history:default".
func WithKey(key string) RedisOption {
	return func(s *RedisStore) {
		s.key = key
	}
}

// WithLimit caps the list length.
func WithLimit(limit int) RedisOption {
	return func(s *RedisStore) {
		s.limit = limit
	}
}

// NewRedisStore connects to a Redis server.
func NewRedisStore(address, password string, db int, opts ...RedisOption) *RedisStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreFromClient(rdb, opts...)
}

// NewRedisStoreFromClient creates a store from an existing client.
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		key:    "smol:history:default",
		limit:  DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored entries, oldest first.
func (s *RedisStore) Load(ctx context.Context) ([]string, error) {
	lines, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrHistoryUnavailable, err)
	}
	return lines, nil
}

// Save replaces the list with the most recent entries of lines.
func (s *RedisStore) Save(ctx context.Context, lines []string) error {
	lines = tail(lines, s.limit)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key)
	if len(lines) > 0 {
		values := make([]any, len(lines))
		for i, l := range lines {
			values[i] = l
		}
		pipe.RPush(ctx, s.key, values...)
		pipe.LTrim(ctx, s.key, int64(-s.limit), -1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrHistoryUnavailable, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
