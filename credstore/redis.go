package credstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisTimeout = 2 * time.Second

// Redis is a [Store] backed by a Redis instance. It serves deployments where
// several shell instances share one credential cache, such as kiosk fleets
// or server-side rendering edges.
//
// The [Store] contract is synchronous, so every call runs under a short
// internal timeout rather than a caller-supplied context.
type Redis struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedis creates a Redis-backed store. Keys are stored under
// "<prefix>:<key>". An empty prefix defaults to "gosession".
func NewRedis(client *redis.Client, prefix string) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	if prefix == "" {
		prefix = "gosession"
	}

	return &Redis{client: client, prefix: prefix, timeout: defaultRedisTimeout}, nil
}

func (r *Redis) key(key string) string {
	return r.prefix + ":" + key
}

// Get returns the stored value for key. Backend errors are reported as
// absence: a shell that cannot reach its credential cache is treated as
// holding no credentials.
func (r *Redis) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

// Set stores value under key with no expiry.
func (r *Redis) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Clear removes key. Clearing an absent key is a no-op.
func (r *Redis) Clear(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
