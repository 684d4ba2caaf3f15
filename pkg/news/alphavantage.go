package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

// Topic filters AlphaVantage understands for the market-news categories.
var alphaVantageTopics = map[string]string{
	"forex":  "forex",
	"crypto": "blockchain",
	"merger": "mergers_and_acquisitions",
}

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) CompanyNews(ctx context.Context, ticker string, from, to time.Time, limit int) ([]Article, error) {
	params := url.Values{}
	params.Set("tickers", ticker)
	params.Set("time_from", from.UTC().Format("20060102T1504"))
	params.Set("time_to", to.UTC().Format("20060102T1504"))
	return c.query(ctx, params, limit)
}

func (c *AlphaVantageClient) MarketNews(ctx context.Context, category string, limit int) ([]Article, error) {
	params := url.Values{}
	if topic, ok := alphaVantageTopics[category]; ok {
		params.Set("topics", topic)
	}
	return c.query(ctx, params, limit)
}

func (c *AlphaVantageClient) query(ctx context.Context, params url.Values, limit int) ([]Article, error) {
	params.Set("function", "NEWS_SENTIMENT")
	params.Set("sort", "LATEST")
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, alphaVantageBaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		if len(articles) >= limit {
			break
		}

		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		related := make([]string, 0, len(item.TickerSentiment))
		for _, ts := range item.TickerSentiment {
			if ts.Ticker != "" {
				related = append(related, ts.Ticker)
			}
		}

		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Summary,
			URL:         item.URL,
			Source:      item.Source,
			Image:       item.BannerImage,
			Related:     related,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title           string              `json:"title"`
	Summary         string              `json:"summary"`
	URL             string              `json:"url"`
	Source          string              `json:"source"`
	BannerImage     string              `json:"banner_image"`
	TimePublished   string              `json:"time_published"`
	TickerSentiment []avTickerSentiment `json:"ticker_sentiment"`
}

type avTickerSentiment struct {
	Ticker string `json:"ticker"`
}
