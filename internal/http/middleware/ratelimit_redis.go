package middleware

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// NewRedisClient connects to addr and pings it. Callers fall back to the
// in-memory limiter when this fails.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisLimiter implements a fixed-window limiter using Redis INCR/EXPIRE so
// the window is shared by every replica.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	val, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if val == 1 {
		// first hit in this window
		if err := l.client.Expire(ctx, key, window).Err(); err != nil {
			return val, err
		}
	}
	return val, nil
}
