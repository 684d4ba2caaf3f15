package market

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	infoTTL    = time.Minute
	historyTTL = 5 * time.Minute
	metricsTTL = 15 * time.Minute
)

// Cache decorates a Client with Redis-backed response caching. Cache errors
// are logged and treated as misses; the provider is always the source of
// truth.
type Cache struct {
	inner Client
	rdb   *redis.Client
}

func NewCache(inner Client, rdb *redis.Client) *Cache {
	return &Cache{inner: inner, rdb: rdb}
}

func (c *Cache) CompanyInfo(ctx context.Context, ticker string) (StockInfo, error) {
	key := fmt.Sprintf("market:info:%s", ticker)
	return cached(ctx, c.rdb, key, infoTTL, func() (StockInfo, error) {
		return c.inner.CompanyInfo(ctx, ticker)
	})
}

func (c *Cache) History(ctx context.Context, ticker, period, interval string) ([]PriceBar, error) {
	key := fmt.Sprintf("market:history:%s:%s:%s", ticker, period, interval)
	return cached(ctx, c.rdb, key, historyTTL, func() ([]PriceBar, error) {
		return c.inner.History(ctx, ticker, period, interval)
	})
}

func (c *Cache) Metrics(ctx context.Context, ticker string) (Metrics, error) {
	key := fmt.Sprintf("market:metrics:%s", ticker)
	return cached(ctx, c.rdb, key, metricsTTL, func() (Metrics, error) {
		return c.inner.Metrics(ctx, ticker)
	})
}

func (c *Cache) PriceSummary(ctx context.Context, ticker, period string) (PriceSummary, error) {
	key := fmt.Sprintf("market:summary:%s:%s", ticker, period)
	return cached(ctx, c.rdb, key, historyTTL, func() (PriceSummary, error) {
		return c.inner.PriceSummary(ctx, ticker, period)
	})
}

func cached[T any](ctx context.Context, rdb *redis.Client, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	var zero T

	raw, err := rdb.Get(ctx, key).Result()
	if err == nil {
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v, nil
		}
		slog.Warn("discarding undecodable cache entry", "key", key)
	} else if err != redis.Nil {
		slog.Warn("cache read failed", "key", key, "error", err)
	}

	v, err := fetch()
	if err != nil {
		return zero, err
	}

	if data, err := json.Marshal(v); err == nil {
		if err := rdb.Set(ctx, key, data, ttl).Err(); err != nil {
			slog.Warn("cache write failed", "key", key, "error", err)
		}
	}

	return v, nil
}
