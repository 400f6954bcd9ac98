// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"docport/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client backing the availability cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. A missing Redis instance is
// not fatal; callers treat a nil client as "caching disabled" and fall back
// to the database on every read.
func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Redis unavailable, availability caching disabled: %v", err)
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
