package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the client backing the scanner prefill cache and the pedido
// job queue. The URL carries auth and database selection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	// Fail fast at startup instead of on the first cache read
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
