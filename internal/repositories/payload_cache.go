package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tripplanner/pkg/memcache"
)

const (
	weatherKeyFormat = "weather_v1:%.3f,%.3f"
	imageKeyFormat   = "image_v1:%s"
)

func WeatherKey(lat, lon float64) string { return fmt.Sprintf(weatherKeyFormat, lat, lon) }
func ImageKey(searchKey string) string   { return fmt.Sprintf(imageKeyFormat, searchKey) }

// PayloadCache stores JSON documents with a TTL.
type PayloadCache interface {
	// Get decodes the cached value into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type redisPayloadCache struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisPayloadCache(client *redis.Client, log *zap.Logger) PayloadCache {
	return &redisPayloadCache{client: client, log: log.Named("RedisPayloadCache")}
}

func (c *redisPayloadCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

func (c *redisPayloadCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

type memoryPayloadCache struct {
	store *memcache.TTLStore[[]byte]
}

// NewMemoryPayloadCache is used when no Redis is configured.
func NewMemoryPayloadCache(store *memcache.TTLStore[[]byte]) PayloadCache {
	if store == nil {
		store = memcache.NewTTLStore[[]byte]()
	}
	return &memoryPayloadCache{store: store}
}

func (c *memoryPayloadCache) Get(_ context.Context, key string, dst any) (bool, error) {
	raw, ok := c.store.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.store.Delete(key)
		return false, nil
	}
	return true, nil
}

func (c *memoryPayloadCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	c.store.Set(key, raw, ttl)
	return nil
}
