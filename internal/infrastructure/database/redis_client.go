package database

import (
	"context"
	"fmt"
	"time"

	"hotel_procurement/internal/infrastructure/logging"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a client for addr and verifies it with PING. The lock
// client shares the same connection pool.
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, *redislock.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		DB:       0,
		PoolSize: 100,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	logging.GetLogger().WithField("addr", addr).Info("[database][redis] connected")
	return rdb, redislock.New(rdb), nil
}
