package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/go-playground/assert/v2"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Yahoo Finance</title>
    <item>
      <title>Apple shares climb after earnings</title>
      <description>Quarterly results beat expectations.</description>
      <link>https://example.com/aapl-earnings</link>
      <pubDate>Thu, 26 Feb 2026 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Old story outside the window</title>
      <description>Stale.</description>
      <link>https://example.com/stale</link>
      <pubDate>Mon, 05 Jan 2026 12:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func newFeedServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, feedXML)
	}))
}

func TestRSSCompanyNews_FiltersDateWindow(t *testing.T) {
	srv := newFeedServer()
	defer srv.Close()

	client := &RSSClient{
		parser:         gofeed.NewParser(),
		companyFeedURL: srv.URL + "?s=%s",
		marketFeedURL:  srv.URL,
	}

	from := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC)

	articles, err := client.CompanyNews(context.Background(), "AAPL", from, to, 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Apple shares climb after earnings", articles[0].Title)
	assert.Equal(t, "Yahoo Finance", articles[0].Source)
	assert.Equal(t, []string{"AAPL"}, articles[0].Related)
}

func TestRSSMarketNews_AppliesLimitAndCategory(t *testing.T) {
	srv := newFeedServer()
	defer srv.Close()

	client := &RSSClient{
		parser:         gofeed.NewParser(),
		companyFeedURL: srv.URL + "?s=%s",
		marketFeedURL:  srv.URL,
	}

	articles, err := client.MarketNews(context.Background(), "general", 1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "general", articles[0].Category)
}
