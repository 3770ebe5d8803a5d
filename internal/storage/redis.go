package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside-orders/internal/domain"
)

// RedisCartStash holds one serialized cart snapshot per restaurant. The key
// is scoped by restaurant so carts for different restaurants never collide.
// Last write wins; concurrent writers for the same cart are out of scope.
type RedisCartStash struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStash(client *redis.Client, ttl time.Duration) *RedisCartStash {
	return &RedisCartStash{Client: client, TTL: ttl}
}

func (c *RedisCartStash) CartKey(restaurantID int) string {
	return domain.CartKeyScope + strconv.Itoa(restaurantID)
}

// Get returns the stored snapshot, or the empty string when none exists.
func (c *RedisCartStash) Get(ctx context.Context, key string) (string, error) {
	raw, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return raw, nil
}

func (c *RedisCartStash) Set(ctx context.Context, key, value string) error {
	return c.Client.Set(ctx, key, value, c.TTL).Err()
}

func (c *RedisCartStash) Remove(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
