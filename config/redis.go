package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// RDB caches resolved user data for the auth middleware. Nil when Redis is
// not configured; callers must check before use.
var RDB *redis.Client

var Ctx = context.Background()

// ConnectRedis sets up the optional Redis cache. A missing REDIS_ADDR or a
// failed ping disables caching instead of failing startup.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		slog.Warn("REDIS_ADDR not set, user data caching is disabled")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Failed to connect to Redis, caching disabled", "error", err)
		RDB = nil
		return
	}

	slog.Info("Connected to Redis")
}
