package openrouter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/ports"
)

// DefaultBaseURL is the OpenAI-compatible OpenRouter endpoint
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Client streams chat completions from OpenRouter
type Client struct {
	client *openai.Client
}

// NewClient creates a Client for apiKey. An empty baseURL uses DefaultBaseURL.
func NewClient(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = DefaultBaseURL
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return &Client{client: openai.NewClientWithConfig(cfg)}
}

// Complete sends a system and a user message and concatenates the streamed deltas
func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		MaxTokens: req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserContent},
		},
		Model:  req.Model,
		Stream: true,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer stream.Close()

	var sb strings.Builder
	chunks := 0
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("completion stream failed: %w", err)
		}
		chunks++
		if len(resp.Choices) > 0 {
			sb.WriteString(resp.Choices[0].Delta.Content)
		}
	}

	logging.Logger.Debug("Completion stream finished", "model", req.Model, "chunks", chunks)
	return sb.String(), nil
}
