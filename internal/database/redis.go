package database

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/gcharris/writers-factory-app-sub009/config"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis opens the client used for month-to-date usage counters.
// Bindings and settings never pass through Redis; cost figures must always
// reflect the current binding set.
func ConnectRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	_, err := RedisClient.Ping(Ctx).Result()
	return err
}
