package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/cenkalti/backoff/v4"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o"

// OpenAIGenerator produces questions via the OpenAI chat completions
// API, requesting JSON-object output so the response needs no scraping.
type OpenAIGenerator struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIGenerator builds a generator for the given key and model. A
// non-empty baseURL points at an OpenAI-compatible endpoint.
func NewOpenAIGenerator(apiKey, model, baseURL string) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIGenerator{model: model, opts: opts}, nil
}

// Generate implements Generator.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	client := openai.NewClient(g.opts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(req)),
			openai.UserMessage(userPrompt(req)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	}

	var completion *openai.ChatCompletion
	op := func() error {
		c, err := client.Chat.Completions.New(ctx, params)
		if err != nil {
			if !openaiRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		completion = c
		return nil
	}
	if err := retryTransient(ctx, op); err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("unexpected response format: empty choices")
	}
	return parseResponse(completion.Choices[0].Message.Content)
}

func openaiRetryable(err error) bool {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode >= 500
	}
	return transientTransportError(err)
}
