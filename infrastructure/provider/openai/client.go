// ABOUTME: Generative-text provider client built on the OpenAI-compatible chat API
// ABOUTME: One short completion per call; the poller drives repetition and timeouts

package openai

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"searchpage-api/core/domain"
	coreerrors "searchpage-api/core/errors"
	"searchpage-api/core/interfaces"
)

const (
	defaultModel = "deepseek-chat"

	// systemPrompt keeps completions short enough for the answer card.
	systemPrompt = "Provide a very brief, helpful answer to the search query."

	temperature = 0.5
	maxTokens   = 150
)

// Config holds generative-text provider configuration
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client implements the AnswerProvider interface using an OpenAI-compatible
// chat completion endpoint.
type Client struct {
	api    openai.Client
	logger interfaces.Logger
	model  string
}

// NewClient creates a new generative-text provider client
func NewClient(logger interfaces.Logger, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("answer provider API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		api:    openai.NewClient(opts...),
		logger: logger,
		model:  model,
	}, nil
}

// Generate requests one completion for the query. Idempotent from the
// caller's perspective; the poller may call it repeatedly for the same query.
func (c *Client) Generate(ctx context.Context, query string) (*domain.Completion, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(query),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, "answer provider request failed")
	}

	if len(resp.Choices) == 0 {
		return &domain.Completion{}, nil
	}

	choice := resp.Choices[0]
	completion := &domain.Completion{
		Text:     strings.TrimSpace(choice.Message.Content),
		Complete: choice.FinishReason == "stop",
	}

	if c.logger != nil {
		c.logger.Debug("Answer provider response", map[string]interface{}{
			"finish_reason": choice.FinishReason,
			"complete":      completion.Complete,
			"text_length":   len(completion.Text),
		})
	}

	return completion, nil
}
