// Package cache stores model query interpretations in Redis so repeated
// queries skip the model call.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/search"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 24 * time.Hour

// RedisCache implements search.InterpretationCache. Entries are stored as
// JSON under "<prefix><sha256 of the normalized query>".
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates the cache. Prefix may be empty; ttl <= 0 uses DefaultTTL.
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = "interp:"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// Key maps a query to its cache key. Case and runs of whitespace are ignored.
func (c *RedisCache) Key(query string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	sum := sha256.Sum256([]byte(norm))
	return c.prefix + hex.EncodeToString(sum[:])
}

// Get returns nil without error on a miss.
func (c *RedisCache) Get(ctx context.Context, query string) (*search.Interpretation, error) {
	b, err := c.client.Get(ctx, c.Key(query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var in search.Interpretation
	if err := json.Unmarshal(b, &in); err != nil {
		_ = c.client.Del(ctx, c.Key(query)).Err()
		return nil, err
	}
	return &in, nil
}

func (c *RedisCache) Put(ctx context.Context, query string, in search.Interpretation) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.Key(query), b, c.ttl).Err()
}
