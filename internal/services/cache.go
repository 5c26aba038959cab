package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snaptext/snaptext-backend/internal/database"
)

const (
	// resultKeyPrefix is the Redis key prefix for cached recognition results
	resultKeyPrefix = "ocr:result:"
	// resultTTL bounds how long a cached result may be served
	resultTTL = 12 * time.Hour
)

// RedisCmd is the slice of the Redis API the cache needs. *redis.Client
// satisfies it.
type RedisCmd interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// ResultCache caches normalized recognition text in Redis, keyed by the
// digest of the uploaded bytes plus the engine name. Identical uploads skip
// preprocessing and the engine entirely. Redis being unavailable degrades to
// a miss, never an error. A zero ResultCache uses the shared client from
// internal/database.
type ResultCache struct {
	client RedisCmd
}

func (c *ResultCache) redis() RedisCmd {
	if c.client != nil {
		return c.client
	}
	if database.RedisClient != nil {
		return database.RedisClient
	}
	return nil
}

// ResultKey derives the cache key for an image/engine pair.
func ResultKey(imageData []byte, engine string) string {
	sum := sha256.Sum256(imageData)
	return hex.EncodeToString(sum[:]) + ":" + engine
}

// GetText retrieves a cached result. Any Redis failure counts as a miss.
func (c *ResultCache) GetText(ctx context.Context, key string) (string, bool) {
	rdb := c.redis()
	if rdb == nil {
		return "", false
	}
	val, err := rdb.Get(ctx, resultKeyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// SetText stores a result; failures are logged and otherwise ignored.
func (c *ResultCache) SetText(ctx context.Context, key, text string) {
	rdb := c.redis()
	if rdb == nil {
		return
	}
	if err := rdb.Set(ctx, resultKeyPrefix+key, text, resultTTL).Err(); err != nil {
		log.Printf("⚠️  Failed to cache recognition result: %v", err)
	}
}

// Global result cache instance
var Cache = &ResultCache{}
