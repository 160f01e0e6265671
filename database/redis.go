package database

import (
	"hall_manager/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the shared client used for token revocation.
func ConnectRedis() {
	addr := config.ConfigOr("REDIS_ADDR", "localhost:6379")
	Redis = redis.NewClient(&redis.Options{Addr: addr})
}
