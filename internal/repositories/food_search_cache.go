package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/logger"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
)

const foodSearchKeyPrefix = "food_search:"

// MemoryFoodSearchCache keeps search results in process memory. Entries expire
// after ttl and the least recently used entry is evicted beyond size.
type MemoryFoodSearchCache struct {
	lru *lru.LRU[string, models.FoodSearchResult]
}

// NewMemoryFoodSearchCache creates an in-process cache bounded by size and ttl.
func NewMemoryFoodSearchCache(size int, ttl time.Duration) *MemoryFoodSearchCache {
	return &MemoryFoodSearchCache{
		lru: lru.NewLRU[string, models.FoodSearchResult](size, nil, ttl),
	}
}

// Get returns the cached result for key, if present and not expired.
func (c *MemoryFoodSearchCache) Get(ctx context.Context, key string) (*models.FoodSearchResult, bool, error) {
	res, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return &res, true, nil
}

// Set stores result under key.
func (c *MemoryFoodSearchCache) Set(ctx context.Context, key string, result *models.FoodSearchResult) error {
	c.lru.Add(key, *result)
	return nil
}

// RedisFoodSearchCache shares search results between instances through Redis.
type RedisFoodSearchCache struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached results
}

// NewRedisFoodSearchCache creates a Redis-backed cache with the given TTL.
func NewRedisFoodSearchCache(client *redis.Client, expiration time.Duration) *RedisFoodSearchCache {
	return &RedisFoodSearchCache{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached result. A missing key is a miss, not an error.
func (c *RedisFoodSearchCache) Get(ctx context.Context, key string) (*models.FoodSearchResult, bool, error) {
	key = foodSearchKeyPrefix + key

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache",
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var res models.FoodSearchResult
	if err := json.Unmarshal(val, &res); err != nil {
		logger.Log.Infow("cache",
			"key", key,
			"result", nil,
			"error", err,
		)
		return nil, false, err
	}

	logger.Log.Infow("cache",
		"key", key,
		"result", res.Count,
		"error", nil,
	)

	return &res, true, nil
}

// Set caches result with the configured expiration.
func (c *RedisFoodSearchCache) Set(ctx context.Context, key string, result *models.FoodSearchResult) error {
	key = foodSearchKeyPrefix + key

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	err = c.client.Set(ctx, key, data, c.exp).Err()

	logger.Log.Infow("cache",
		"key", key,
		"result", result.Count,
		"error", err,
	)

	return err
}
