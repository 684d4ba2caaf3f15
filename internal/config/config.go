// Package config holds the application settings. The struct is built once in
// main from the environment and passed into each constructor; nothing in the
// package keeps global state.
package config

import "os"

type Config struct {
	Port        string
	FrontendURL string

	LLMProvider     string
	LLMModel        string
	AnthropicAPIKey string
	OpenAIAPIKey    string

	FinnhubAPIKey      string
	AlphaVantageAPIKey string
	NewsProvider       string

	DatabaseURL string
	RedisURL    string
}

func Load() Config {
	return Config{
		Port:        envOr("PORT", "8080"),
		FrontendURL: os.Getenv("FRONTEND_URL"),

		LLMProvider:     envOr("LLM_PROVIDER", "anthropic"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),

		FinnhubAPIKey:      os.Getenv("FINNHUB_API_KEY"),
		AlphaVantageAPIKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
		NewsProvider:       os.Getenv("NEWS_PROVIDER"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}
}

// LLMKey returns the API key matching the configured completion provider.
func (c Config) LLMKey() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.AnthropicAPIKey
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
