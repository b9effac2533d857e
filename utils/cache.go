package utils

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small read-through cache over redis. A nil *Cache is a valid
// no-op cache, which is what NewCache returns when no address is configured;
// callers never branch on whether caching is enabled.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(addr, password string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}),
		ttl: ttl,
	}
}

// Get unmarshals the cached value into dest and reports whether it was found.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// QueryCacheKey derives a stable key from any marshalable query payload.
func QueryCacheKey(prefix string, payload interface{}) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return prefix + ":unkeyed"
	}
	sum := md5.Sum(data)
	return prefix + ":" + hex.EncodeToString(sum[:])
}
