package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	api *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnhubClient{api: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) CompanyNews(ctx context.Context, ticker string, from, to time.Time, limit int) ([]Article, error) {
	res, _, err := c.api.CompanyNews(ctx).
		Symbol(ticker).
		From(from.Format("2006-01-02")).
		To(to.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub company news for %s: %w", ticker, err)
	}

	articles := make([]Article, 0, limit)
	for _, item := range res {
		if len(articles) >= limit {
			break
		}

		a := Article{}

		if item.Headline != nil {
			a.Title = *item.Headline
		}
		if item.Summary != nil {
			a.Description = *item.Summary
		}
		if item.Url != nil {
			a.URL = *item.Url
		}
		if item.Source != nil {
			a.Source = *item.Source
		}
		if item.Category != nil {
			a.Category = *item.Category
		}
		if item.Image != nil {
			a.Image = *item.Image
		}
		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0).UTC()
		}
		if item.Related != nil && *item.Related != "" {
			a.Related = strings.Split(*item.Related, ",")
		}

		articles = append(articles, a)
	}

	return articles, nil
}

func (c *FinnhubClient) MarketNews(ctx context.Context, category string, limit int) ([]Article, error) {
	res, _, err := c.api.MarketNews(ctx).Category(category).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub market news: %w", err)
	}

	articles := make([]Article, 0, limit)
	for _, item := range res {
		if len(articles) >= limit {
			break
		}

		a := Article{Category: category}

		if item.Headline != nil {
			a.Title = *item.Headline
		}
		if item.Summary != nil {
			a.Description = *item.Summary
		}
		if item.Url != nil {
			a.URL = *item.Url
		}
		if item.Source != nil {
			a.Source = *item.Source
		}
		if item.Category != nil {
			a.Category = *item.Category
		}
		if item.Image != nil {
			a.Image = *item.Image
		}
		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0).UTC()
		}

		articles = append(articles, a)
	}

	return articles, nil
}
