package llm

import "context"

// Request is a single completion call: a system instruction, a user prompt,
// and sampling limits.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Completer is implemented by each hosted completion provider. The reply is
// free text; any structure in it is the caller's problem.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	ModelName() string
}
