// Package completion wraps the hosted chat-model endpoint behind a
// contract that always yields a reply string, never an error.
package completion

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"storebot/internal/config"
	"storebot/internal/logger"
)

// Apology is the user-facing reply when the completion endpoint fails.
const Apology = "I apologize, but I'm experiencing technical difficulties. Please try again in a moment."

// Client sends a full message list to a chat model and returns the
// generated text. One attempt per call, no retry.
type Client struct {
	model einomodel.BaseChatModel
}

// New builds a client for the configured provider. Generation
// parameters (model id, temperature, max tokens) are fixed at
// construction time.
func New(ctx context.Context, cfg config.CompletionConfig, apiKey string) (*Client, error) {
	switch cfg.Provider {
	case "ollama":
		model, err := ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: cfg.OllamaURL,
			Model:   cfg.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("error creating ollama chat model: %w", err)
		}
		return &Client{model: model}, nil

	default:
		maxTokens := cfg.MaxTokens
		temperature := cfg.Temperature
		model, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      apiKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			MaxTokens:   &maxTokens,
			Temperature: &temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("error creating openai chat model: %w", err)
		}
		return &Client{model: model}, nil
	}
}

// NewWithModel wraps an already-constructed chat model.
func NewWithModel(model einomodel.BaseChatModel) *Client {
	return &Client{model: model}
}

// Complete sends messages to the model and returns the generated text.
// Any failure (timeout, quota, malformed response) degrades to the
// fixed apology string instead of an error.
func (c *Client) Complete(ctx context.Context, messages []*schema.Message) string {
	out, err := c.model.Generate(ctx, messages)
	if err != nil {
		logger.Error().Err(err).Int("messages", len(messages)).Msg("Completion request failed")
		return Apology
	}
	if out == nil || out.Content == "" {
		logger.Error().Int("messages", len(messages)).Msg("Completion returned empty content")
		return Apology
	}
	return out.Content
}
