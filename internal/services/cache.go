package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent (or caching is disabled).
var ErrCacheMiss = errors.New("cache miss")

// CacheService is a Redis-backed response cache. A nil *CacheService is
// valid and behaves as a cache that always misses, so handlers never need to
// branch on whether Redis is configured.
type CacheService struct {
	client *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{client: client}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if s == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	if err := s.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	if s == nil {
		return ErrCacheMiss
	}
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if s == nil {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

// Cache key generators. Keys embed the snapshot version, so swapping in a
// new snapshot implicitly invalidates every cached response.

func GameStatsCacheKey(snapshotVersion, playerID, matchID string) string {
	return fmt.Sprintf("gamestats:%s:%s:%s", snapshotVersion, playerID, matchID)
}

func SpatialCacheKey(snapshotVersion, playerID, category, mode, matchID string) string {
	return fmt.Sprintf("spatial:%s:%s:%s:%s:%s", snapshotVersion, playerID, category, mode, matchID)
}
