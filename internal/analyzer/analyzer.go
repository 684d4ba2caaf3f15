// Package analyzer combines market data, news sentiment, and AI analysis
// into the responses served by the analysis endpoints.
package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/arush-mehrotra/finance-ai-agent/internal/advisor"
	"github.com/arush-mehrotra/finance-ai-agent/internal/model"
	"github.com/arush-mehrotra/finance-ai-agent/internal/sentiment"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/market"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/news"
)

const (
	newsLookbackDays   = 7
	analysisNewsLimit  = 10
	questionNewsLimit  = 5
	recentNewsInReport = 5
)

// HistoryStore records completed analyses. Optional; a nil store disables
// recording.
type HistoryStore interface {
	Save(rec *model.AnalysisRecord) error
}

type Analyzer struct {
	market  market.Client
	news    news.Source
	advisor *advisor.Advisor
	history HistoryStore
}

func New(m market.Client, n news.Source, adv *advisor.Advisor, history HistoryStore) *Analyzer {
	return &Analyzer{market: m, news: n, advisor: adv, history: history}
}

// SentimentReport is the aggregated news sentiment for a ticker.
type SentimentReport struct {
	Ticker       string                    `json:"ticker"`
	Summary      sentiment.Summary         `json:"summary"`
	ArticleCount int                       `json:"article_count"`
	RecentNews   []model.ClassifiedArticle `json:"recent_news"`
}

// Investment is the combined result of a full analysis run.
type Investment struct {
	Ticker         string                  `json:"ticker"`
	Info           market.StockInfo        `json:"stock_info"`
	Metrics        market.Metrics          `json:"metrics"`
	NewsSentiment  SentimentReport         `json:"news_sentiment"`
	Analysis       advisor.Analysis        `json:"analysis"`
	Recommendation *advisor.Recommendation `json:"recommendation,omitempty"`
}

// Answer is the response to a free-form stock question.
type Answer struct {
	Ticker     string  `json:"ticker"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	StockPrice float64 `json:"stock_price"`
}

// ComparisonEntry is one ticker's slice of a side-by-side comparison.
// Failures are recorded per entry rather than failing the whole comparison.
type ComparisonEntry struct {
	Ticker        string          `json:"ticker"`
	Name          string          `json:"name,omitempty"`
	Price         float64         `json:"price,omitempty"`
	PERatio       float64         `json:"pe_ratio,omitempty"`
	MarketCap     float64         `json:"market_cap,omitempty"`
	ProfitMargin  float64         `json:"profit_margin,omitempty"`
	RevenueGrowth float64         `json:"revenue_growth,omitempty"`
	NewsSentiment sentiment.Label `json:"news_sentiment,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// NewsDigest is the AI news summary plus how many articles fed it.
type NewsDigest struct {
	Summary      advisor.NewsSummary `json:"summary"`
	ArticleCount int                 `json:"article_count"`
}

func (a *Analyzer) fetchClassifiedNews(ctx context.Context, ticker string, limit int) ([]model.ClassifiedArticle, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -newsLookbackDays)

	articles, err := a.news.CompanyNews(ctx, ticker, from, to, limit)
	if err != nil {
		return nil, err
	}

	return model.Classify(articles), nil
}

func buildReport(ticker string, articles []model.ClassifiedArticle) SentimentReport {
	labels := make([]sentiment.Label, len(articles))
	for i, a := range articles {
		labels[i] = a.Sentiment
	}

	recent := articles
	if len(recent) > recentNewsInReport {
		recent = recent[:recentNewsInReport]
	}

	return SentimentReport{
		Ticker:       ticker,
		Summary:      sentiment.Aggregate(labels),
		ArticleCount: len(articles),
		RecentNews:   recent,
	}
}

// NewsSentiment fetches the last week of news, classifies each article, and
// aggregates the labels.
func (a *Analyzer) NewsSentiment(ctx context.Context, ticker string) (SentimentReport, error) {
	articles, err := a.fetchClassifiedNews(ctx, ticker, analysisNewsLimit)
	if err != nil {
		return SentimentReport{}, err
	}
	return buildReport(ticker, articles), nil
}

// AnalyzeInvestment runs the full pipeline: stock data, financial metrics,
// classified news, AI analysis, and optionally a recommendation. Metric and
// recommendation failures degrade the response instead of failing it.
func (a *Analyzer) AnalyzeInvestment(ctx context.Context, ticker, question string, includeRecommendation bool) (Investment, error) {
	info, err := a.market.CompanyInfo(ctx, ticker)
	if err != nil {
		return Investment{}, err
	}

	metrics, err := a.market.Metrics(ctx, ticker)
	if err != nil {
		slog.Warn("financial metrics unavailable", "ticker", ticker, "error", err)
	}

	articles, err := a.fetchClassifiedNews(ctx, ticker, analysisNewsLimit)
	if err != nil {
		return Investment{}, err
	}

	analysis, err := a.advisor.AnalyzeStock(ctx, ticker, info, articles, question)
	if err != nil {
		return Investment{}, err
	}

	result := Investment{
		Ticker:        ticker,
		Info:          info,
		Metrics:       metrics,
		NewsSentiment: buildReport(ticker, articles),
		Analysis:      analysis,
	}

	if includeRecommendation {
		rec, err := a.advisor.Recommend(ctx, ticker, analysis.Analysis, info)
		if err != nil {
			slog.Warn("recommendation unavailable", "ticker", ticker, "error", err)
		} else {
			result.Recommendation = &rec
		}
	}

	a.record(ticker, question, &result)

	return result, nil
}

func (a *Analyzer) record(ticker, question string, result *Investment) {
	if a.history == nil {
		return
	}

	rec := model.AnalysisRecord{
		Ticker:    ticker,
		Question:  question,
		Analysis:  result.Analysis.Analysis,
		ModelUsed: a.advisor.ModelName(),
	}
	if result.Recommendation != nil {
		rec.Recommendation = result.Recommendation.Recommendation
		rec.Confidence = result.Recommendation.Confidence
	}

	if err := a.history.Save(&rec); err != nil {
		slog.Warn("failed to record analysis", "ticker", ticker, "error", err)
	}
}

// AnswerQuestion gathers context and asks the model a free-form question.
func (a *Analyzer) AnswerQuestion(ctx context.Context, ticker, question string) (Answer, error) {
	info, err := a.market.CompanyInfo(ctx, ticker)
	if err != nil {
		return Answer{}, err
	}

	articles, err := a.fetchClassifiedNews(ctx, ticker, questionNewsLimit)
	if err != nil {
		return Answer{}, err
	}

	answer, err := a.advisor.AnswerQuestion(ctx, ticker, question, info, articles)
	if err != nil {
		return Answer{}, err
	}

	return Answer{
		Ticker:     ticker,
		Question:   question,
		Answer:     answer,
		StockPrice: info.CurrentPrice,
	}, nil
}

// CompareStocks gathers key metrics and news sentiment per ticker. A failing
// ticker contributes an error entry, not a failed comparison.
func (a *Analyzer) CompareStocks(ctx context.Context, tickers []string) []ComparisonEntry {
	entries := make([]ComparisonEntry, 0, len(tickers))

	for _, ticker := range tickers {
		entry := ComparisonEntry{Ticker: ticker}

		info, err := a.market.CompanyInfo(ctx, ticker)
		if err != nil {
			entry.Error = err.Error()
			entries = append(entries, entry)
			continue
		}

		entry.Name = info.Name
		entry.Price = info.CurrentPrice
		entry.PERatio = info.PERatio
		entry.MarketCap = info.MarketCap
		entry.ProfitMargin = info.ProfitMargin
		entry.RevenueGrowth = info.RevenueGrowth

		report, err := a.NewsSentiment(ctx, ticker)
		if err != nil {
			slog.Warn("news sentiment unavailable for comparison", "ticker", ticker, "error", err)
			entry.NewsSentiment = sentiment.Neutral
		} else {
			entry.NewsSentiment = report.Summary.Overall
		}

		entries = append(entries, entry)
	}

	return entries
}

// NewsSummary fetches recent news and asks the model for a digest.
func (a *Analyzer) NewsSummary(ctx context.Context, ticker string) (NewsDigest, error) {
	articles, err := a.fetchClassifiedNews(ctx, ticker, analysisNewsLimit)
	if err != nil {
		return NewsDigest{}, err
	}

	summary, err := a.advisor.SummarizeNews(ctx, ticker, articles)
	if err != nil {
		return NewsDigest{}, err
	}

	return NewsDigest{Summary: summary, ArticleCount: len(articles)}, nil
}
