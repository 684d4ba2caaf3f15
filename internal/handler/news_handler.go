package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arush-mehrotra/finance-ai-agent/internal/analyzer"
	"github.com/arush-mehrotra/finance-ai-agent/internal/model"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/news"
)

const dateLayout = "2006-01-02"

// SentimentReporter aggregates news sentiment for a ticker.
type SentimentReporter interface {
	NewsSentiment(ctx context.Context, ticker string) (analyzer.SentimentReport, error)
}

type NewsHandler struct {
	source   news.Source
	reporter SentimentReporter
}

func NewNewsHandler(source news.Source, reporter SentimentReporter) *NewsHandler {
	return &NewsHandler{source: source, reporter: reporter}
}

func (h *NewsHandler) GetCompanyNews(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))
	limit := getQueryLimit(c)

	to := time.Now()
	from := to.AddDate(0, 0, -7)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		to = parsed
	}

	articles, err := h.source.CompanyNews(c.Request.Context(), ticker, from, to, limit)
	if err != nil {
		slog.Error("error fetching company news", "ticker", ticker, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	classified := model.Classify(articles)

	entries := make([]ArticleEntry, 0, len(classified))
	for _, a := range classified {
		entry := articleEntry(a.Article)
		entry.Sentiment = string(a.Sentiment)
		entries = append(entries, entry)
	}

	respondOK(c, CompanyNewsResponse{
		Ticker:   ticker,
		Articles: entries,
		Count:    len(entries),
		DateRange: DateRange{
			From: from.Format(dateLayout),
			To:   to.Format(dateLayout),
		},
	})
}

func (h *NewsHandler) GetMarketNews(c *gin.Context) {
	category := c.DefaultQuery("category", "general")
	limit := getQueryLimit(c)

	articles, err := h.source.MarketNews(c.Request.Context(), category, limit)
	if err != nil {
		slog.Error("error fetching market news", "category", category, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entries := make([]ArticleEntry, 0, len(articles))
	for _, a := range articles {
		entries = append(entries, articleEntry(a))
	}

	respondOK(c, MarketNewsResponse{
		Category: category,
		Articles: entries,
		Count:    len(entries),
	})
}

func (h *NewsHandler) GetNewsSentiment(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	report, err := h.reporter.NewsSentiment(c.Request.Context(), ticker)
	if err != nil {
		slog.Error("error aggregating news sentiment", "ticker", ticker, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	recent := make([]ArticleEntry, 0, len(report.RecentNews))
	for _, a := range report.RecentNews {
		entry := articleEntry(a.Article)
		entry.Sentiment = string(a.Sentiment)
		recent = append(recent, entry)
	}

	respondOK(c, NewsSentimentResponse{
		Ticker:           report.Ticker,
		OverallSentiment: string(report.Summary.Overall),
		SentimentScore:   report.Summary.Score,
		PositiveMentions: report.Summary.Positive,
		NegativeMentions: report.Summary.Negative,
		NeutralMentions:  report.Summary.Neutral,
		ArticleCount:     report.ArticleCount,
		RecentNews:       recent,
	})
}

func articleEntry(a news.Article) ArticleEntry {
	return ArticleEntry{
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		Source:      a.Source,
		Category:    a.Category,
		Image:       a.Image,
		Related:     a.Related,
		PublishedAt: a.PublishedAt.Format(time.RFC3339),
	}
}

func getQueryLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return news.DefaultLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", raw, "error", err)
		return news.DefaultLimit
	}

	return news.ClampLimit(limit)
}
