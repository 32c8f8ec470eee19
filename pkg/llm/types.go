package llm

import "context"

// Client defines the interface for LLM-backed SQL generation. The prompt is
// fully composed by the caller; the client only performs the completion
// round-trip.
type Client interface {
	GenerateSQL(ctx context.Context, prompt string) (string, error)
	GetModelInfo() ModelInfo
}

// ModelInfo contains information about the LLM model
type ModelInfo struct {
	Name                string
	Provider            string
	MaxCompletionTokens int
}

// Config holds configuration for LLM clients
type Config struct {
	Provider            string
	Model               string
	APIKey              string
	MaxCompletionTokens int
	Temperature         float64
}
