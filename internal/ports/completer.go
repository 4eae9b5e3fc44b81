package ports

import "context"

// CompletionRequest is a single system+user prompt exchange
type CompletionRequest struct {
	MaxTokens    int
	Model        string
	SystemPrompt string
	UserContent  string
}

// Completer generates text from a language model
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
