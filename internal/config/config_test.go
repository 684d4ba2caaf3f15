package config

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "anthropic", cfg.LLMProvider)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("FINNHUB_API_KEY", "fh-test")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "fh-test", cfg.FinnhubAPIKey)
	assert.Equal(t, "sk-test", cfg.LLMKey())
}

func TestLLMKey_DefaultsToAnthropic(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")

	cfg := Load()

	assert.Equal(t, "ak-test", cfg.LLMKey())
}
