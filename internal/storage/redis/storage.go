package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/storage"
)

// Storage is a Redis-backed implementation of the session store. Each
// session is a hash whose expiry is pushed back on every access.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = storage.DefaultSessionTTL
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ping checks the connection
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Ensure Storage implements the interface
var _ storage.SessionStore = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, id model.SessionID, key string) (string, error) {
	sk := sessionKey(id)

	pipe := s.client.TxPipeline()
	get := pipe.HGet(ctx, sk, key)
	pipe.Expire(ctx, sk, s.cfg.SessionTTL)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	value, err := get.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrSessionValueNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, id model.SessionID, key, value string) error {
	sk := sessionKey(id)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, sk, key, value)
	pipe.Expire(ctx, sk, s.cfg.SessionTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) Remove(ctx context.Context, id model.SessionID, key string) error {
	sk := sessionKey(id)

	pipe := s.client.TxPipeline()
	pipe.HDel(ctx, sk, key)
	pipe.Expire(ctx, sk, s.cfg.SessionTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) Delete(ctx context.Context, id model.SessionID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
