package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arush-mehrotra/finance-ai-agent/internal/analyzer"
	"github.com/arush-mehrotra/finance-ai-agent/internal/model"
)

const historyLimit = 10

// InvestmentAnalyzer runs the AI analysis pipelines.
type InvestmentAnalyzer interface {
	AnalyzeInvestment(ctx context.Context, ticker, question string, includeRecommendation bool) (analyzer.Investment, error)
	AnswerQuestion(ctx context.Context, ticker, question string) (analyzer.Answer, error)
	CompareStocks(ctx context.Context, tickers []string) []analyzer.ComparisonEntry
	NewsSummary(ctx context.Context, ticker string) (analyzer.NewsDigest, error)
}

// AnalysisStore reads persisted analysis runs. Nil when no database is
// configured.
type AnalysisStore interface {
	RecentByTicker(ticker string, limit int) ([]model.AnalysisRecord, error)
}

type AnalysisHandler struct {
	analyzer InvestmentAnalyzer
	store    AnalysisStore
}

func NewAnalysisHandler(a InvestmentAnalyzer, store AnalysisStore) *AnalysisHandler {
	return &AnalysisHandler{analyzer: a, store: store}
}

type analyzeRequest struct {
	Ticker                string `json:"ticker"`
	Question              string `json:"question"`
	IncludeRecommendation *bool  `json:"include_recommendation"`
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Ticker == "" {
		respondError(c, http.StatusBadRequest, "Ticker is required")
		return
	}

	ticker := strings.ToUpper(req.Ticker)
	includeRecommendation := true
	if req.IncludeRecommendation != nil {
		includeRecommendation = *req.IncludeRecommendation
	}

	result, err := h.analyzer.AnalyzeInvestment(c.Request.Context(), ticker, req.Question, includeRecommendation)
	if err != nil {
		slog.Error("error analyzing investment", "ticker", ticker, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(c, result)
}

type askRequest struct {
	Ticker   string `json:"ticker"`
	Question string `json:"question"`
}

func (h *AnalysisHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Ticker == "" {
		respondError(c, http.StatusBadRequest, "Ticker is required")
		return
	}
	if req.Question == "" {
		respondError(c, http.StatusBadRequest, "Question is required")
		return
	}

	ticker := strings.ToUpper(req.Ticker)

	answer, err := h.analyzer.AnswerQuestion(c.Request.Context(), ticker, req.Question)
	if err != nil {
		slog.Error("error answering question", "ticker", ticker, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(c, answer)
}

type compareRequest struct {
	Tickers []string `json:"tickers"`
}

func (h *AnalysisHandler) Compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Tickers) < 2 {
		respondError(c, http.StatusBadRequest, "At least 2 tickers required for comparison")
		return
	}
	if len(req.Tickers) > 10 {
		respondError(c, http.StatusBadRequest, "Maximum 10 tickers allowed")
		return
	}

	tickers := make([]string, len(req.Tickers))
	for i, t := range req.Tickers {
		tickers[i] = strings.ToUpper(t)
	}

	entries := h.analyzer.CompareStocks(c.Request.Context(), tickers)

	respondOK(c, gin.H{"tickers": tickers, "comparison": entries})
}

func (h *AnalysisHandler) GetNewsSummary(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	digest, err := h.analyzer.NewsSummary(c.Request.Context(), ticker)
	if err != nil {
		slog.Error("error summarizing news", "ticker", ticker, "error", err)
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(c, gin.H{"summary": digest.Summary, "article_count": digest.ArticleCount})
}

func (h *AnalysisHandler) GetHistory(c *gin.Context) {
	if h.store == nil {
		respondError(c, http.StatusServiceUnavailable, "Analysis history is not configured")
		return
	}

	ticker := strings.ToUpper(c.Param("ticker"))

	records, err := h.store.RecentByTicker(ticker, historyLimit)
	if err != nil {
		slog.Error("error fetching analysis history", "ticker", ticker, "error", err)
		respondError(c, http.StatusInternalServerError, "Database error")
		return
	}

	entries := make([]AnalysisRecordEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, AnalysisRecordEntry{
			ID:             r.ID,
			Ticker:         r.Ticker,
			Question:       r.Question,
			Analysis:       r.Analysis,
			Recommendation: r.Recommendation,
			Confidence:     r.Confidence,
			ModelUsed:      r.ModelUsed,
			CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		})
	}

	respondOK(c, AnalysisHistoryResponse{
		Ticker:  ticker,
		Records: entries,
		Count:   len(entries),
	})
}
