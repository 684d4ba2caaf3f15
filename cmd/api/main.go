package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/arush-mehrotra/finance-ai-agent/db"
	"github.com/arush-mehrotra/finance-ai-agent/internal/advisor"
	"github.com/arush-mehrotra/finance-ai-agent/internal/analyzer"
	"github.com/arush-mehrotra/finance-ai-agent/internal/config"
	"github.com/arush-mehrotra/finance-ai-agent/internal/handler"
	"github.com/arush-mehrotra/finance-ai-agent/internal/repository"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/llm"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/market"
	"github.com/arush-mehrotra/finance-ai-agent/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	if cfg.FinnhubAPIKey == "" {
		log.Fatal("FINNHUB_API_KEY is required")
	}

	marketClient := buildMarketClient(cfg)
	newsSource := buildNewsSource(cfg)
	completer := buildCompleter(cfg)

	adv := advisor.New(completer)

	var historyStore analyzer.HistoryStore
	var analysisStore handler.AnalysisStore
	historyAvailable := false

	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer pool.Close()

		repo := repository.NewAnalysisRepository(pool)
		historyStore = repo
		analysisStore = repo
		historyAvailable = true
	} else {
		slog.Info("DATABASE_URL not set, analysis history disabled")
	}

	investmentAnalyzer := analyzer.New(marketClient, newsSource, adv, historyStore)

	stockHandler := handler.NewStockHandler(marketClient)
	newsHandler := handler.NewNewsHandler(newsSource, investmentAnalyzer)
	analysisHandler := handler.NewAnalysisHandler(investmentAnalyzer, analysisStore)
	healthHandler := handler.NewHealthHandler(handler.ServiceStatus{
		MarketData: true,
		News:       true,
		AIAgent:    cfg.LLMKey() != "",
		History:    historyAvailable,
	})

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", healthHandler.GetRoot)
	r.GET("/health", healthHandler.GetHealth)

	r.GET("/api/stock/:ticker", stockHandler.GetStockInfo)
	r.GET("/api/stock/:ticker/history", stockHandler.GetHistory)
	r.GET("/api/stock/:ticker/metrics", stockHandler.GetMetrics)
	r.GET("/api/stock/:ticker/summary", stockHandler.GetPriceSummary)

	r.GET("/api/news/market", newsHandler.GetMarketNews)
	r.GET("/api/news/:ticker", newsHandler.GetCompanyNews)
	r.GET("/api/news/:ticker/sentiment", newsHandler.GetNewsSentiment)

	r.POST("/api/analyze", analysisHandler.Analyze)
	r.POST("/api/ask", analysisHandler.Ask)
	r.POST("/api/compare", analysisHandler.Compare)
	r.GET("/api/analyze/:ticker/news-summary", analysisHandler.GetNewsSummary)
	r.GET("/api/analyze/:ticker/history", analysisHandler.GetHistory)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func buildMarketClient(cfg config.Config) market.Client {
	var client market.Client = market.NewFinnhubClient(cfg.FinnhubAPIKey)

	if cfg.RedisURL != "" {
		rdb, err := db.ConnectRedis(cfg.RedisURL)
		if err != nil {
			slog.Warn("redis unavailable, market data caching disabled", "error", err)
			return client
		}
		client = market.NewCache(client, rdb)
		slog.Info("market data caching enabled")
	}

	return client
}

func buildNewsSource(cfg config.Config) news.Source {
	switch cfg.NewsProvider {
	case "alphavantage":
		if cfg.AlphaVantageAPIKey == "" {
			log.Fatal("ALPHA_VANTAGE_API_KEY is required for the alphavantage news provider")
		}
		return news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey)
	case "rss":
		return news.NewRSSClient()
	case "", "finnhub":
		return news.NewFinnhubClient(cfg.FinnhubAPIKey)
	default:
		log.Fatalf("unknown news provider: %s", cfg.NewsProvider)
		return nil
	}
}

func buildCompleter(cfg config.Config) llm.Completer {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Fatal("OPENAI_API_KEY is required for the openai provider")
		}
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Fatal("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMModel)
	default:
		log.Fatalf("unknown LLM provider: %s", cfg.LLMProvider)
		return nil
	}
}
