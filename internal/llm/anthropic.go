package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cenkalti/backoff/v4"
)

// DefaultAnthropicModel is used when no model is configured.
const DefaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicGenerator produces questions via the Anthropic Messages API.
type AnthropicGenerator struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicGenerator builds a generator for the given key and model.
func NewAnthropicGenerator(apiKey, model string) (*AnthropicGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicGenerator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}, nil
}

// Generate implements Generator.
func (g *AnthropicGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	params := anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(req)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt(req))),
		},
	}

	var message *anthropic.Message
	op := func() error {
		m, err := g.client.Messages.New(ctx, params)
		if err != nil {
			if !anthropicRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		message = m
		return nil
	}
	if err := retryTransient(ctx, op); err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return nil, fmt.Errorf("unexpected response format: no content blocks")
	}
	block := message.Content[0]
	if block.Type != "text" {
		return nil, fmt.Errorf("unexpected response format: not a text block (type=%s)", block.Type)
	}
	return parseResponse(block.Text)
}

// anthropicRetryable classifies API errors: rate limits and server-side
// failures are worth retrying, everything else is not.
func anthropicRetryable(err error) bool {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode >= 500
	}
	return transientTransportError(err)
}
