package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Dan9191/quote-service/internal/models"
)

const quoteKeyPrefix = "quotes:"

// QuoteCache keeps generated quote sets in Redis for a bounded time
type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuoteCache wraps a Redis client. A zero ttl keeps entries until evicted.
func NewQuoteCache(client *redis.Client, ttl time.Duration) *QuoteCache {
	return &QuoteCache{client: client, ttl: ttl}
}

// Get returns the cached quote set for key, or false on a miss
func (c *QuoteCache) Get(ctx context.Context, key string) (*models.QuoteSet, bool, error) {
	raw, err := c.client.Get(ctx, quoteKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached quotes: %w", err)
	}

	var set models.QuoteSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached quotes: %w", err)
	}
	if !set.RiskCategory.Valid() {
		return nil, false, fmt.Errorf("failed to decode cached quotes: unknown risk tier %q", set.RiskCategory)
	}
	return &set, true, nil
}

// Set stores a quote set under key
func (c *QuoteCache) Set(ctx context.Context, key string, set *models.QuoteSet) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode quotes: %w", err)
	}
	if err := c.client.Set(ctx, quoteKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache quotes: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (c *QuoteCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
