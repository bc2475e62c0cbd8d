package completion

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// OpenAI uses the chat completions API. BaseURL may point at any
// OpenAI-compatible host.
type OpenAI struct {
	client *openai.Client
	cfg    Config
}

func NewOpenAI(cfg Config) *OpenAI {
	return NewOpenAIWithHTTP(cfg, nil)
}

// NewOpenAIWithHTTP is NewOpenAI with a caller-supplied HTTP client.
func NewOpenAIWithHTTP(cfg Config, hc *http.Client) *OpenAI {
	if cfg.Model == "" {
		cfg.Model = openai.GPT3Dot5Turbo
	}
	o := &OpenAI{cfg: cfg}
	if cfg.APIKey == "" {
		return o
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if hc != nil {
		oc.HTTPClient = hc
	}
	o.client = openai.NewClientWithConfig(oc)
	return o
}

func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	if o.client == nil {
		return "", ErrMissingAPIKey
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{Provider: ProviderOpenAI, StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", &UpstreamError{Provider: ProviderOpenAI, StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
