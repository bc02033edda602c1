package config

// Redis is optional infrastructure for this service: it backs the response
// cache and the rate limiter. When no server can be reached at startup the
// client constructor returns nil and both middlewares silently disable
// themselves, so a plain single-process deployment needs no Redis at all.

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from REDIS_ADDR (host:port), REDIS_PASSWORD
// and REDIS_DB. It pings the server with a short timeout and returns nil when
// the server does not answer, leaving caching and rate limiting disabled.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
