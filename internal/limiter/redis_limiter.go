package limiter

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests per client in fixed windows stored in Redis,
// so several server instances share one limit.
//
// Key format: ratelimit:{client}:{window}
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int64
}

// NewRedisLimiter connects to Redis and creates a limiter for requestsPerSecond per client
func NewRedisLimiter(addr, password string, db int, requestsPerSecond float64) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for rate limiting: %w", err)
	}

	// Fractional rates get a longer window: 0.2 req/s is 1 request per 5 seconds
	window := time.Second
	if requestsPerSecond < 1.0 {
		window = time.Duration(math.Ceil(1/requestsPerSecond)) * time.Second
	}

	return &RedisLimiter{
		client: client,
		window: window,
		limit:  int64(math.Ceil(requestsPerSecond * window.Seconds())),
	}, nil
}

// Allow increments the client's counter for the current window.
// Redis errors fail open.
func (l *RedisLimiter) Allow(client string) bool {
	ctx := context.Background()
	now := time.Now()
	key := fmt.Sprintf("ratelimit:%s:%d", client, now.Unix()/int64(l.window.Seconds()))

	var count *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, 2*l.window)
		return nil
	})
	if err != nil {
		return true
	}

	return count.Val() <= l.limit
}

func (l *RedisLimiter) Close() error {
	if l.client != nil {
		return l.client.Close()
	}
	return nil
}
