package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// InitRedisServer connects the shared Redis client used for import sessions,
// refresh tokens and list-cache invalidation.
func InitRedisServer(ctx context.Context) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_ADDRESS"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	return client
}
