package news

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	defaultCompanyFeedURL = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"
	defaultMarketFeedURL  = "https://finance.yahoo.com/news/rssindex"
)

// RSSClient is a keyless fallback source reading public finance RSS feeds.
type RSSClient struct {
	parser         *gofeed.Parser
	companyFeedURL string
	marketFeedURL  string
}

func NewRSSClient() *RSSClient {
	return &RSSClient{
		parser:         gofeed.NewParser(),
		companyFeedURL: defaultCompanyFeedURL,
		marketFeedURL:  defaultMarketFeedURL,
	}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

func (c *RSSClient) CompanyNews(ctx context.Context, ticker string, from, to time.Time, limit int) ([]Article, error) {
	feed, err := c.parser.ParseURLWithContext(fmt.Sprintf(c.companyFeedURL, ticker), ctx)
	if err != nil {
		return nil, fmt.Errorf("rss company feed for %s: %w", ticker, err)
	}

	articles := make([]Article, 0, limit)
	for _, item := range feed.Items {
		if len(articles) >= limit {
			break
		}

		a := itemToArticle(item, feed.Title)
		if !a.PublishedAt.IsZero() && (a.PublishedAt.Before(from) || a.PublishedAt.After(to)) {
			continue
		}
		a.Related = []string{ticker}

		articles = append(articles, a)
	}

	return articles, nil
}

func (c *RSSClient) MarketNews(ctx context.Context, category string, limit int) ([]Article, error) {
	feed, err := c.parser.ParseURLWithContext(c.marketFeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss market feed: %w", err)
	}

	articles := make([]Article, 0, limit)
	for _, item := range feed.Items {
		if len(articles) >= limit {
			break
		}

		a := itemToArticle(item, feed.Title)
		a.Category = category

		articles = append(articles, a)
	}

	return articles, nil
}

func itemToArticle(item *gofeed.Item, feedTitle string) Article {
	a := Article{
		Title:       item.Title,
		Description: item.Description,
		URL:         item.Link,
		Source:      feedTitle,
	}
	if item.PublishedParsed != nil {
		a.PublishedAt = item.PublishedParsed.UTC()
	}
	return a
}
