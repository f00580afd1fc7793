// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"terapiku/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// CheckoutCacheClient is the dedicated client for checkout sessions.
	CheckoutCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitCheckoutCache initializes the Redis client holding checkout sessions.
func InitCheckoutCache() {
	CheckoutCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCheckoutDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CheckoutCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Checkout): %v", err)
	}
}

// GetCheckoutCacheClient returns the Redis client for checkout sessions.
func GetCheckoutCacheClient() *redis.Client {
	if CheckoutCacheClient == nil {
		InitCheckoutCache()
	}
	return CheckoutCacheClient
}
