package llm

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/go-playground/assert/v2"
	"github.com/openai/openai-go"
)

func TestAnthropicDefaultModel(t *testing.T) {
	c := NewAnthropicClient("key", "")
	assert.Equal(t, c.ModelName(), string(anthropic.ModelClaudeSonnet4_0))
}

func TestAnthropicModelOverride(t *testing.T) {
	c := NewAnthropicClient("key", "claude-opus-4-0")
	assert.Equal(t, c.ModelName(), "claude-opus-4-0")
}

func TestOpenAIDefaultModel(t *testing.T) {
	c := NewOpenAIClient("key", "")
	assert.Equal(t, c.ModelName(), string(openai.ChatModelGPT4oMini))
}

func TestOpenAIModelOverride(t *testing.T) {
	c := NewOpenAIClient("key", "gpt-4o")
	assert.Equal(t, c.ModelName(), "gpt-4o")
}
