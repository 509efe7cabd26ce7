package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/insightstream/strategy-ai/pkg/model"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// DefaultOpenRouterModel is used when no model override is configured.
const DefaultOpenRouterModel = "google/gemini-2.5-flash"

// OpenRouter is a chat-completions client for the OpenRouter unified
// API, which is OpenAI-compatible.
type OpenRouter struct {
	client *openai.Client
	model  string
}

// NewOpenRouter creates an OpenRouter client with the default model.
func NewOpenRouter(apiKey string) *OpenRouter {
	return NewOpenRouterWithModel(apiKey, DefaultOpenRouterModel)
}

// NewOpenRouterWithModel creates an OpenRouter client for a specific
// model.
func NewOpenRouterWithModel(apiKey, model string) *OpenRouter {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	return &OpenRouter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// NewOpenRouterWithBaseURL points the client at a different endpoint,
// such as the strategy-ai relay.
func NewOpenRouterWithBaseURL(apiKey, model, baseURL string) *OpenRouter {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &OpenRouter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GetModel returns the model this client requests.
func (o *OpenRouter) GetModel() string {
	return o.model
}

// Chat sends one completion request and returns the raw content of the
// first choice. No retries.
func (o *OpenRouter) Chat(ctx context.Context, messages []model.Message, opts Options) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: float32(opts.Temperature),
		MaxTokens:   capTokens(opts.MaxTokens),
		TopP:        float32(opts.TopP),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from openrouter")
	}
	return resp.Choices[0].Message.Content, nil
}
