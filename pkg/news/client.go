// Package news fetches financial news from third-party providers.
package news

import (
	"context"
	"time"
)

type Article struct {
	Title       string
	Description string
	URL         string
	Source      string
	Category    string
	Image       string
	Related     []string
	PublishedAt time.Time
}

// Source is implemented by each news provider.
type Source interface {
	CompanyNews(ctx context.Context, ticker string, from, to time.Time, limit int) ([]Article, error)
	MarketNews(ctx context.Context, category string, limit int) ([]Article, error)
	Name() string
}

const (
	MinLimit     = 1
	MaxLimit     = 50
	DefaultLimit = 20
)

// ClampLimit bounds an article limit to the allowed 1-50 range, substituting
// the default for non-positive values.
func ClampLimit(limit int) int {
	if limit < MinLimit {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
