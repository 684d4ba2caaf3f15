// Package advisor turns market data and news into AI-generated analysis:
// prompt construction, completion calls, and parsing of the replies.
package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arush-mehrotra/finance-ai-agent/internal/model"
	"github.com/arush-mehrotra/finance-ai-agent/internal/sentiment"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/llm"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/market"
)

type Advisor struct {
	completer llm.Completer
}

func New(completer llm.Completer) *Advisor {
	return &Advisor{completer: completer}
}

func (a *Advisor) ModelName() string {
	return a.completer.ModelName()
}

type Analysis struct {
	Ticker       string   `json:"ticker"`
	Analysis     string   `json:"analysis"`
	KeyPoints    []string `json:"key_points"`
	CurrentPrice float64  `json:"current_price"`
}

// AnalyzeStock generates a comprehensive analysis from the stock snapshot and
// recent classified news, optionally steered by a user question.
func (a *Advisor) AnalyzeStock(ctx context.Context, ticker string, info market.StockInfo, articles []model.ClassifiedArticle, question string) (Analysis, error) {
	promptContext := buildContext(ticker, info, articles)

	var prompt string
	if question != "" {
		prompt = fmt.Sprintf("%s\n\nUser Question: %s\n\nProvide a detailed analysis addressing the user's question.", promptContext, question)
	} else {
		prompt = fmt.Sprintf("%s\n\nProvide a comprehensive investment analysis for %s.", promptContext, ticker)
	}

	text, err := a.completer.Complete(ctx, llm.Request{
		System:      analystSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("generating analysis: %w", err)
	}

	keyPoints := extractKeyPoints(text, 5)
	if len(keyPoints) == 0 {
		keyPoints = []string{"See full analysis for details"}
	}

	return Analysis{
		Ticker:       ticker,
		Analysis:     text,
		KeyPoints:    keyPoints,
		CurrentPrice: info.CurrentPrice,
	}, nil
}

// AnswerQuestion answers a free-form question about the stock from the same
// context the analysis uses.
func (a *Advisor) AnswerQuestion(ctx context.Context, ticker, question string, info market.StockInfo, articles []model.ClassifiedArticle) (string, error) {
	prompt := fmt.Sprintf("%s\n\nQuestion: %s\n\nProvide a clear, concise answer based on the data provided.",
		buildContext(ticker, info, articles), question)

	text, err := a.completer.Complete(ctx, llm.Request{
		System:      analystSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("answering question: %w", err)
	}

	return text, nil
}

type NewsSummary struct {
	Ticker    string          `json:"ticker"`
	Summary   string          `json:"summary"`
	Sentiment sentiment.Label `json:"sentiment"`
	KeyPoints []string        `json:"key_points"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// SummarizeNews asks the model for a structured news digest. Sections the
// reply does not carry are reported in Warnings and replaced with the
// documented defaults (truncated raw text, neutral sentiment, empty points).
func (a *Advisor) SummarizeNews(ctx context.Context, ticker string, articles []model.ClassifiedArticle) (NewsSummary, error) {
	if len(articles) == 0 {
		return NewsSummary{
			Ticker:    ticker,
			Summary:   "No recent news available.",
			Sentiment: sentiment.Neutral,
			KeyPoints: []string{},
		}, nil
	}

	prompt := fmt.Sprintf(newsSummaryPromptFormat, ticker, formatNewsForPrompt(articles))

	text, err := a.completer.Complete(ctx, llm.Request{
		System:      newsAnalystSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   1024,
		Temperature: 0.5,
	})
	if err != nil {
		return NewsSummary{}, fmt.Errorf("summarizing news: %w", err)
	}

	parsed := parseNewsSummary(text)
	for _, w := range parsed.Warnings {
		slog.Warn("news summary reply not fully structured", "ticker", ticker, "warning", w)
	}

	summary := NewsSummary{
		Ticker:    ticker,
		Summary:   parsed.Summary,
		Sentiment: parsed.Sentiment,
		KeyPoints: parsed.KeyPoints,
		Warnings:  parsed.Warnings,
	}
	if summary.Summary == "" {
		summary.Summary = truncate(text, 200)
	}
	if summary.KeyPoints == nil {
		summary.KeyPoints = []string{}
	}

	return summary, nil
}

type Recommendation struct {
	Ticker         string   `json:"ticker"`
	Recommendation string   `json:"recommendation"`
	Confidence     string   `json:"confidence"`
	Reasoning      string   `json:"reasoning"`
	Risks          string   `json:"risks"`
	Warnings       []string `json:"warnings,omitempty"`
}

// Recommend turns an existing analysis into a BUY/HOLD/SELL call. Missing
// sections are reported in Warnings and fall back to HOLD with Medium
// confidence.
func (a *Advisor) Recommend(ctx context.Context, ticker, analysis string, info market.StockInfo) (Recommendation, error) {
	prompt := fmt.Sprintf(recommendationPromptFormat,
		ticker, analysis, fmtMoney(info.CurrentPrice), fmtNum(info.PERatio), fmtMoney(info.MarketCap))

	text, err := a.completer.Complete(ctx, llm.Request{
		System:      advisorSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   512,
		Temperature: 0.5,
	})
	if err != nil {
		return Recommendation{}, fmt.Errorf("generating recommendation: %w", err)
	}

	parsed := parseRecommendation(text)
	for _, w := range parsed.Warnings {
		slog.Warn("recommendation reply not fully structured", "ticker", ticker, "warning", w)
	}

	rec := Recommendation{
		Ticker:         ticker,
		Recommendation: parsed.Recommendation,
		Confidence:     parsed.Confidence,
		Reasoning:      parsed.Reasoning,
		Risks:          parsed.Risks,
		Warnings:       parsed.Warnings,
	}
	if rec.Recommendation == "" {
		rec.Recommendation = "HOLD"
	}
	if rec.Confidence == "" {
		rec.Confidence = "Medium"
	}
	if rec.Reasoning == "" {
		rec.Reasoning = truncate(text, 200)
	}

	return rec, nil
}
