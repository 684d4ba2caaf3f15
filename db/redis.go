package db

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to Redis from a URL, falling back to treating the
// value as a bare address, and verifies the connection with a ping.
func ConnectRedis(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
