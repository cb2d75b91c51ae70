package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the cache, returning nil when REDIS_ADDR is unset or
// the server is unreachable. Callers treat a nil client as "caching disabled".
func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("⚠️ Failed to connect to Redis at %s: %v. Caching disabled.", addr, err)
		return nil
	}
	log.Println("✅ Redis connected")
	return client
}
