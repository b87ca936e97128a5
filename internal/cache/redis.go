package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/utils"
)

// NewRedisClient connects to Redis when REDIS_ADDR is set. Returns nil when
// unset or unreachable; callers run without caching in that case.
func NewRedisClient(log *logger.Logger) *redis.Client {
	addr := utils.GetEnv("REDIS_ADDR", "", log)
	if addr == "" {
		log.Info("REDIS_ADDR not set, dashboard caching disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetEnv("REDIS_PASSWORD", "", log),
		DB:       utils.GetEnvAsInt("REDIS_DB", 0, log),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, dashboard caching disabled", "addr", addr, "error", err)
		return nil
	}
	log.Info("Connected to Redis", "addr", addr)
	return rdb
}
